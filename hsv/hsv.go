// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsv provides the HSV (hue, saturation, value) color
// representation, a hexcone projection of sRGB.
package hsv

import (
	"fmt"
	"image/color"

	"cogentcore.org/colors/cie"
	"cogentcore.org/colors/coord"
	"cogentcore.org/colors/coord/minmax"
	"cogentcore.org/colors/srgb"
)

// HSV is a color in the HSV color space. H is the hue in degrees from
// 0-360, and S and V are the saturation and value from 0-1.
type HSV struct {
	H float64
	S float64
	V float64
}

// New returns a new [HSV] color with the given components.
func New(h, s, v float64) HSV {
	return HSV{h, s, v}
}

// FromRGB returns the [HSV] color for the given sRGB color.
// Grays have a hue and saturation of 0, as does black.
func FromRGB(c srgb.RGB) HSV {
	h, chroma, mx, _ := c.Hexcone()
	s := 0.0
	if chroma > 0 && mx > srgb.GrayTolerance {
		s = chroma / mx
	}
	return HSV{h, s, mx}
}

// RGB returns the color in sRGB.
func (c HSV) RGB() srgb.RGB {
	chroma := c.S * c.V
	return srgb.FromHexcone(c.H, chroma, c.V-chroma)
}

// ToXYZ returns the color in XYZ viewed under the given illuminant.
func (c HSV) ToXYZ(il cie.Illuminant) cie.XYZ {
	return c.RGB().ToXYZ(il)
}

// FromXYZ returns the [HSV] color for the given XYZ color.
func (HSV) FromXYZ(xyz cie.XYZ) HSV {
	return FromRGB(srgb.RGB{}.FromXYZ(xyz))
}

// Coord returns H, S, V as a [coord.Vector3].
func (c HSV) Coord() coord.Vector3 {
	return coord.Vec3(c.H, c.S, c.V)
}

// FromCoord returns the color with H, S, V from the given [coord.Vector3].
func (HSV) FromCoord(v coord.Vector3) HSV {
	return HSV{v.X, v.Y, v.Z}
}

// Bounds returns 0-360 for H and 0-1 for S and V.
func (HSV) Bounds() [3]minmax.F64 {
	return [3]minmax.F64{minmax.New(0, 360), minmax.Unit, minmax.Unit}
}

// RGBA implements the [color.Color] interface.
func (c HSV) RGBA() (r, g, b, a uint32) {
	return c.RGB().RGBA()
}

// Model is the standard [color.Model] that converts colors to [HSV].
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HSV); ok {
		return h
	}
	return FromRGB(srgb.FromColor(c))
}

// String returns a string representation of the color.
func (c HSV) String() string {
	return fmt.Sprintf("hsv(%.4g, %.4g, %.4g)", c.H, c.S, c.V)
}
