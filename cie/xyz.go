// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"fmt"
	"math"

	"cogentcore.org/colors/coord"
)

// XYZ is a color in the CIE 1931 XYZ space, viewed under the given
// illuminant. It is the hub through which every other representation
// converts. Y is the relative luminance, with the white of the illuminant
// at Y = 1. Components outside of 0-1, including negative values,
// represent out-of-gamut or imaginary colors and are kept as is.
type XYZ struct {
	X float64
	Y float64
	Z float64

	Illuminant Illuminant
}

// ToXYZ returns the color viewed under the given illuminant.
func (c XYZ) ToXYZ(il Illuminant) XYZ {
	return c.Adapt(il)
}

// FromXYZ returns the given color unchanged.
func (XYZ) FromXYZ(o XYZ) XYZ {
	return o
}

// Vector3 returns the X, Y, Z components as a [coord.Vector3].
func (c XYZ) Vector3() coord.Vector3 {
	return coord.Vec3(c.X, c.Y, c.Z)
}

// approxEqual reports whether the color is within tol of o on each
// axis, after adapting o to the illuminant of the color.
func (c XYZ) approxEqual(o XYZ, tol float64) bool {
	o = o.Adapt(c.Illuminant)
	return math.Abs(c.X-o.X) <= tol && math.Abs(c.Y-o.Y) <= tol && math.Abs(c.Z-o.Z) <= tol
}

// ApproxEqual reports whether the two colors are equal up to floating
// point error (1e-10 on each axis), after adapting to a common illuminant.
func (c XYZ) ApproxEqual(o XYZ) bool {
	return c.approxEqual(o, 1e-10)
}

// ApproxVisuallyEqual reports whether the two colors are equal up to
// 1e-3 on each axis, which is far below any visible difference.
func (c XYZ) ApproxVisuallyEqual(o XYZ) bool {
	return c.approxEqual(o, 1e-3)
}

// WeightedMidpoint returns c*w + o*(1-w), after adapting o to the
// illuminant of c.
func (c XYZ) WeightedMidpoint(o XYZ, w float64) XYZ {
	v := c.Vector3().WeightedMidpoint(o.Adapt(c.Illuminant).Vector3(), w)
	return XYZ{v.X, v.Y, v.Z, c.Illuminant}
}

// Mix returns the midpoint of the two colors, under the illuminant of c.
func (c XYZ) Mix(o XYZ) XYZ {
	return c.WeightedMidpoint(o, 0.5)
}

// String returns a string representation of the color.
func (c XYZ) String() string {
	return fmt.Sprintf("xyz(%g, %g, %g, %s)", c.X, c.Y, c.Z, c.Illuminant)
}
