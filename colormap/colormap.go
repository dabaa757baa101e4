// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides colormaps, which map the numbers from 0 to 1
// onto colors in a continuous way, as used for data visualization.
package colormap

import (
	"math"
)

// Map is a colormap that returns colors of type T.
type Map[T any] interface {

	// At returns the color for the given value. Values outside of
	// 0-1 are clamped into that range.
	At(x float64) T
}

// Transform returns the colors of the colormap for each of the given values.
func Transform[T any](m Map[T], xs []float64) []T {
	cs := make([]T, len(xs))
	for i, x := range xs {
		cs[i] = m.At(x)
	}
	return cs
}

// Linear is the identity normalization.
func Linear(x float64) float64 {
	return x
}

// Cbrt is the cube root normalization, which expands the low end of the
// range. It is a good default for data spanning orders of magnitude.
func Cbrt(x float64) float64 {
	return math.Cbrt(x)
}
