// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"cogentcore.org/colors/coord"
	"cogentcore.org/colors/coord/minmax"
)

// Bounded is a [Point] whose gamut is a box in its embedding,
// given as one range per component.
type Bounded[T any] interface {
	Point[T]

	// Bounds returns the range of each component, in field order.
	Bounds() [3]minmax.F64
}

// ClampCoord clips each component of v into the bounds of B.
func ClampCoord[B Bounded[B]](v coord.Vector3) coord.Vector3 {
	var b B
	bs := b.Bounds()
	for i := range 3 {
		v.SetDim(i, bs[i].ClipValue(v.Dim(i)))
	}
	return v
}

// GamutTolerance is how far outside of its bounds a component may be
// and still count as in gamut, which absorbs conversion rounding.
const GamutTolerance = 1e-9

// InGamut returns whether c, converted into B, has every component
// within the bounds of B up to [GamutTolerance].
//
//	colors.InGamut[srgb.RGB](lab.New(50, 100, 0)) // false
func InGamut[B Bounded[B]](c Color) bool {
	b := Convert[B](c)
	bs := b.Bounds()
	v := b.Coord()
	for i := range 3 {
		if !bs[i].Expand(GamutTolerance).InRange(v.Dim(i)) {
			return false
		}
	}
	return true
}

// Clamp converts c into B, clips it into the gamut of B, and converts
// the result back into T. Colors already in the gamut of B are returned
// unchanged. When T is B no conversion is done. Clamping is idempotent.
//
//	inGamut := colors.Clamp[srgb.RGB](lab.New(50, 100, 0))
func Clamp[B Bounded[B], T Space[T]](c T) T {
	if InGamut[B](c) {
		return c
	}
	b := Convert[B](c)
	clamped := b.FromCoord(ClampCoord[B](b.Coord()))
	return Convert[T](clamped)
}
