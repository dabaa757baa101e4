// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package luv provides the CIE 1976 L*u*v* color representation and its
// cylindrical L*C*h(uv) form, both relative to a D50 reference white.
package luv

import (
	"fmt"
	"math"

	"cogentcore.org/colors/cie"
	"cogentcore.org/colors/coord"
)

// White is the reference white of [Luv] and [LCh].
var White = cie.D50

// Luv is a color in the CIE L*u*v* color space. L is the same
// perceptual lightness as CIE L*a*b*, and U and V are opponent axes
// in the u'v' chromaticity diagram scaled by L.
type Luv struct {
	L float64
	U float64
	V float64
}

// New returns a new [Luv] color with the given components.
func New(l, u, v float64) Luv {
	return Luv{l, u, v}
}

// ToXYZ returns the color in XYZ viewed under the given illuminant.
func (c Luv) ToXYZ(il cie.Illuminant) cie.XYZ {
	w := White.WhitePoint()
	x, y, z := cie.LUVToXYZ(c.L, c.U, c.V, w.X, w.Y, w.Z)
	return cie.XYZ{X: x, Y: y, Z: z, Illuminant: White}.Adapt(il)
}

// FromXYZ returns the [Luv] color for the given XYZ color.
// Black returns all zeros.
func (Luv) FromXYZ(xyz cie.XYZ) Luv {
	xyz = xyz.Adapt(White)
	w := White.WhitePoint()
	l, u, v := cie.XYZToLUV(xyz.X, xyz.Y, xyz.Z, w.X, w.Y, w.Z)
	return Luv{l, u, v}
}

// Coord returns L, U, V as a [coord.Vector3].
func (c Luv) Coord() coord.Vector3 {
	return coord.Vec3(c.L, c.U, c.V)
}

// FromCoord returns the color with L, U, V from the given [coord.Vector3].
func (Luv) FromCoord(v coord.Vector3) Luv {
	return Luv{v.X, v.Y, v.Z}
}

// LCh returns the color in cylindrical form.
func (c Luv) LCh() LCh {
	return LCh{c.L, math.Hypot(c.U, c.V), cie.HueAngle(c.U, c.V)}
}

// String returns a string representation of the color.
func (c Luv) String() string {
	return fmt.Sprintf("luv(%.4g, %.4g, %.4g)", c.L, c.U, c.V)
}

// LCh is a color in the cylindrical form of CIE L*u*v*, with the
// hue angle H in degrees from 0-360.
type LCh struct {
	L float64
	C float64
	H float64
}

// NewLCh returns a new [LCh] color with the given components.
func NewLCh(l, c, h float64) LCh {
	return LCh{l, c, h}
}

// Luv returns the color in opponent axis form.
func (c LCh) Luv() Luv {
	s, co := math.Sincos(c.H * math.Pi / 180)
	return Luv{c.L, c.C * co, c.C * s}
}

// Saturation returns the saturation C/L, and 0 for black.
func (c LCh) Saturation() float64 {
	if c.L == 0 {
		return 0
	}
	return c.C / c.L
}

// ToXYZ returns the color in XYZ viewed under the given illuminant.
func (c LCh) ToXYZ(il cie.Illuminant) cie.XYZ {
	return c.Luv().ToXYZ(il)
}

// FromXYZ returns the [LCh] color for the given XYZ color.
func (LCh) FromXYZ(xyz cie.XYZ) LCh {
	return Luv{}.FromXYZ(xyz).LCh()
}

// Coord returns L, C, H as a [coord.Vector3].
func (c LCh) Coord() coord.Vector3 {
	return coord.Vec3(c.L, c.C, c.H)
}

// FromCoord returns the color with L, C, H from the given [coord.Vector3].
func (LCh) FromCoord(v coord.Vector3) LCh {
	return LCh{v.X, v.Y, v.Z}
}

// String returns a string representation of the color.
func (c LCh) String() string {
	return fmt.Sprintf("lchuv(%.4g, %.4g, %.4g)", c.L, c.C, c.H)
}
