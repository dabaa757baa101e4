// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"math"

	"cogentcore.org/colors"
	"cogentcore.org/colors/coord/minmax"
	"cogentcore.org/colors/srgb"
)

// Listed is a colormap defined by a list of equally spaced sRGB anchor
// colors, with linear interpolation in sRGB between neighboring anchors.
// The result is converted into T.
type Listed[T colors.Space[T]] struct {

	// Colors are the anchors, with the first at 0 and the last at 1.
	Colors []srgb.RGB
}

var _ Map[srgb.RGB] = (*Listed[srgb.RGB])(nil)

// NewListed returns a new [Listed] colormap with the given anchors.
func NewListed[T colors.Space[T]](cs ...srgb.RGB) *Listed[T] {
	return &Listed[T]{Colors: cs}
}

// At returns the color of the colormap at the given value.
// An empty colormap returns the zero value of T.
func (l *Listed[T]) At(x float64) T {
	var zero T
	switch len(l.Colors) {
	case 0:
		return zero
	case 1:
		return colors.Convert[T](l.Colors[0])
	}
	pos := minmax.Unit.ClipValue(x) * float64(len(l.Colors)-1)
	i := int(math.Floor(pos))
	if i == len(l.Colors)-1 {
		return colors.Convert[T](l.Colors[i])
	}
	frac := pos - float64(i)
	return colors.Convert[T](colors.WeightedMidpoint(l.Colors[i+1], l.Colors[i], frac))
}
