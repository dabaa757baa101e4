// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package adobergb provides the Adobe RGB (1998) color representation,
// a wide gamut RGB space with a D65 reference white.
package adobergb

import (
	"fmt"
	"math"

	"cogentcore.org/colors/base/errors"
	"cogentcore.org/colors/cie"
	"cogentcore.org/colors/coord"
	"cogentcore.org/colors/coord/minmax"
)

// White is the reference white of Adobe RGB.
var White = cie.D65

// Gamma is the exponent of the Adobe RGB transfer function.
const Gamma = 563.0 / 256.0

// RGBToXYZMatrix converts linear Adobe RGB into XYZ viewed under D65,
// derived from the Adobe RGB (1998) primaries and [White].
var RGBToXYZMatrix = errors.Must1(cie.PrimariesMatrix([2]float64{0.64, 0.33}, [2]float64{0.21, 0.71}, [2]float64{0.15, 0.06}, White))

// XYZToRGBMatrix is the inverse of [RGBToXYZMatrix].
var XYZToRGBMatrix = errors.Must1(RGBToXYZMatrix.Inverse())

// RGB is a color in the Adobe RGB (1998) color space, with components
// nominally from 0-1. Out of gamut values are kept until clamped.
type RGB struct {
	R float64
	G float64
	B float64
}

// New returns a new [RGB] color with the given components.
func New(r, g, b float64) RGB {
	return RGB{r, g, b}
}

func encode(v float64) float64 {
	return math.Copysign(math.Pow(math.Abs(v), 1/Gamma), v)
}

func decode(v float64) float64 {
	return math.Copysign(math.Pow(math.Abs(v), Gamma), v)
}

// ToXYZ returns the color in XYZ viewed under the given illuminant.
func (c RGB) ToXYZ(il cie.Illuminant) cie.XYZ {
	v := RGBToXYZMatrix.MulVector3(coord.Vec3(decode(c.R), decode(c.G), decode(c.B)))
	return cie.XYZ{X: v.X, Y: v.Y, Z: v.Z, Illuminant: White}.Adapt(il)
}

// FromXYZ returns the [RGB] color for the given XYZ color.
func (RGB) FromXYZ(xyz cie.XYZ) RGB {
	v := XYZToRGBMatrix.MulVector3(xyz.Adapt(White).Vector3())
	return RGB{encode(v.X), encode(v.Y), encode(v.Z)}
}

// Coord returns R, G, B as a [coord.Vector3].
func (c RGB) Coord() coord.Vector3 {
	return coord.Vec3(c.R, c.G, c.B)
}

// FromCoord returns the color with R, G, B from the given [coord.Vector3].
func (RGB) FromCoord(v coord.Vector3) RGB {
	return RGB{v.X, v.Y, v.Z}
}

// Bounds returns 0-1 for each of R, G, B.
func (RGB) Bounds() [3]minmax.F64 {
	return [3]minmax.F64{minmax.Unit, minmax.Unit, minmax.Unit}
}

// String returns a string representation of the color.
func (c RGB) String() string {
	return fmt.Sprintf("adobergb(%.4g, %.4g, %.4g)", c.R, c.G, c.B)
}
