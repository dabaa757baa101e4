// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"cogentcore.org/colors"
	"cogentcore.org/colors/coord/minmax"
	"cogentcore.org/colors/srgb"
)

// Gradient is a colormap that interpolates between two colors in the
// embedding of T. The input is clamped to 0-1, normalized, and then
// projected into Padding, which selects the part of the Start to End
// gradient that is used.
type Gradient[T colors.Point[T]] struct {

	// Start is the color at 0, before padding.
	Start T

	// End is the color at 1, before padding.
	End T

	// Normalize maps the clamped input onto the 0-1 gradient position.
	// It is typically [Linear] or [Cbrt]; nil is treated as [Linear].
	Normalize func(x float64) float64

	// Padding is the sub range of the gradient that is used.
	Padding minmax.F64
}

var _ Map[srgb.RGB] = (*Gradient[srgb.RGB])(nil)

// NewLinear returns a new [Gradient] from start to end with linear normalization.
func NewLinear[T colors.Point[T]](start, end T) *Gradient[T] {
	return &Gradient[T]{Start: start, End: end, Normalize: Linear, Padding: minmax.Unit}
}

// NewCbrt returns a new [Gradient] from start to end with cube root normalization.
func NewCbrt[T colors.Point[T]](start, end T) *Gradient[T] {
	return &Gradient[T]{Start: start, End: end, Normalize: Cbrt, Padding: minmax.Unit}
}

// SetPadding sets the [Gradient.Padding] and returns the gradient.
func (g *Gradient[T]) SetPadding(mn, mx float64) *Gradient[T] {
	g.Padding = minmax.New(mn, mx)
	return g
}

// At returns the color of the gradient at the given value.
func (g *Gradient[T]) At(x float64) T {
	x = minmax.Unit.ClipValue(x)
	if g.Normalize != nil {
		x = g.Normalize(x)
	}
	return colors.PaddedGradient(g.Start, g.End, g.Padding)(x)
}
