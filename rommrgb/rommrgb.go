// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rommrgb provides the ROMM RGB (ProPhoto RGB) color
// representation, a very wide gamut RGB space with a D50 reference
// white. Its green and blue primaries are imaginary colors.
package rommrgb

import (
	"fmt"
	"math"

	"cogentcore.org/colors/base/errors"
	"cogentcore.org/colors/cie"
	"cogentcore.org/colors/coord"
	"cogentcore.org/colors/coord/minmax"
)

// White is the reference white of ROMM RGB.
var White = cie.D50

// RGBToXYZMatrix converts linear ROMM RGB into XYZ viewed under D50,
// derived from the ISO 22028-2 primaries and [White].
var RGBToXYZMatrix = errors.Must1(cie.PrimariesMatrix([2]float64{0.7347, 0.2653}, [2]float64{0.1596, 0.8404}, [2]float64{0.0366, 0.0001}, White))

// XYZToRGBMatrix is the inverse of [RGBToXYZMatrix].
var XYZToRGBMatrix = errors.Must1(RGBToXYZMatrix.Inverse())

const (
	// linearCutoff is the linear value below which encoding is linear (1/512).
	linearCutoff = 1.0 / 512.0

	// encodedCutoff is the encoded value of linearCutoff.
	encodedCutoff = 16 * linearCutoff
)

// RGB is a color in the ROMM RGB color space, with components
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

// encode applies the ROMM transfer function: gamma 1.8 with a linear
// segment near 0. It is odd symmetric.
func encode(v float64) float64 {
	a := math.Abs(v)
	if a < linearCutoff {
		return 16 * v
	}
	return math.Copysign(math.Pow(a, 1/1.8), v)
}

func decode(v float64) float64 {
	a := math.Abs(v)
	if a < encodedCutoff {
		return v / 16
	}
	return math.Copysign(math.Pow(a, 1.8), v)
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
	return fmt.Sprintf("rommrgb(%.4g, %.4g, %.4g)", c.R, c.G, c.B)
}
