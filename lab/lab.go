// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lab provides the CIE 1976 L*a*b* color representation and its
// cylindrical L*C*h form, both relative to a D50 reference white.
package lab

import (
	"fmt"
	"math"

	"cogentcore.org/colors/cie"
	"cogentcore.org/colors/coord"
)

// White is the reference white of [Lab] and [LCh].
var White = cie.D50

// Lab is a color in the CIE L*a*b* color space. L is the perceptual
// lightness from 0-100, A is the green (-) to red (+) axis and
// B is the blue (-) to yellow (+) axis.
type Lab struct {
	L float64
	A float64
	B float64
}

// New returns a new [Lab] color with the given components.
func New(l, a, b float64) Lab {
	return Lab{l, a, b}
}

// ToXYZ returns the color in XYZ viewed under the given illuminant.
func (c Lab) ToXYZ(il cie.Illuminant) cie.XYZ {
	w := White.WhitePoint()
	x, y, z := cie.LABToXYZ(c.L, c.A, c.B, w.X, w.Y, w.Z)
	return cie.XYZ{X: x, Y: y, Z: z, Illuminant: White}.Adapt(il)
}

// FromXYZ returns the [Lab] color for the given XYZ color.
func (Lab) FromXYZ(xyz cie.XYZ) Lab {
	xyz = xyz.Adapt(White)
	w := White.WhitePoint()
	l, a, b := cie.XYZToLAB(xyz.X, xyz.Y, xyz.Z, w.X, w.Y, w.Z)
	return Lab{l, a, b}
}

// Coord returns L, A, B as a [coord.Vector3].
func (c Lab) Coord() coord.Vector3 {
	return coord.Vec3(c.L, c.A, c.B)
}

// FromCoord returns the color with L, A, B from the given [coord.Vector3].
func (Lab) FromCoord(v coord.Vector3) Lab {
	return Lab{v.X, v.Y, v.Z}
}

// DeltaE2000 returns the CIEDE2000 color difference between the two colors.
func (c Lab) DeltaE2000(o Lab) float64 {
	return cie.DeltaE2000(c.L, c.A, c.B, o.L, o.A, o.B)
}

// LCh returns the color in cylindrical form.
func (c Lab) LCh() LCh {
	return LCh{c.L, c.Chroma(), cie.HueAngle(c.A, c.B)}
}

// Chroma returns the distance of the color from the neutral axis.
func (c Lab) Chroma() float64 {
	return math.Hypot(c.A, c.B)
}

// String returns a string representation of the color.
func (c Lab) String() string {
	return fmt.Sprintf("lab(%.4g, %.4g, %.4g)", c.L, c.A, c.B)
}
