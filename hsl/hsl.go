// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hsl provides the HSL (hue, saturation, lightness) color
// representation, a double hexcone projection of sRGB.
package hsl

import (
	"fmt"
	"image/color"
	"math"

	"cogentcore.org/colors/cie"
	"cogentcore.org/colors/coord"
	"cogentcore.org/colors/coord/minmax"
	"cogentcore.org/colors/srgb"
)

// HSL is a color in the HSL color space. H is the hue in degrees from
// 0-360, and S and L are the saturation and lightness from 0-1.
type HSL struct {
	H float64
	S float64
	L float64
}

// New returns a new [HSL] color with the given components.
func New(h, s, l float64) HSL {
	return HSL{h, s, l}
}

// FromRGB returns the [HSL] color for the given sRGB color.
// Grays have a hue and saturation of 0, as do black and white and
// colors within [srgb.GrayTolerance] of them.
func FromRGB(c srgb.RGB) HSL {
	h, chroma, mx, mn := c.Hexcone()
	l := (mx + mn) / 2
	s := 0.0
	if d := 1 - math.Abs(2*l-1); chroma > 0 && d > srgb.GrayTolerance {
		s = chroma / d
	}
	return HSL{h, s, l}
}

// RGB returns the color in sRGB.
func (c HSL) RGB() srgb.RGB {
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	return srgb.FromHexcone(c.H, chroma, c.L-chroma/2)
}

// ToXYZ returns the color in XYZ viewed under the given illuminant.
func (c HSL) ToXYZ(il cie.Illuminant) cie.XYZ {
	return c.RGB().ToXYZ(il)
}

// FromXYZ returns the [HSL] color for the given XYZ color.
func (HSL) FromXYZ(xyz cie.XYZ) HSL {
	return FromRGB(srgb.RGB{}.FromXYZ(xyz))
}

// Coord returns H, S, L as a [coord.Vector3].
func (c HSL) Coord() coord.Vector3 {
	return coord.Vec3(c.H, c.S, c.L)
}

// FromCoord returns the color with H, S, L from the given [coord.Vector3].
func (HSL) FromCoord(v coord.Vector3) HSL {
	return HSL{v.X, v.Y, v.Z}
}

// Bounds returns 0-360 for H and 0-1 for S and L.
func (HSL) Bounds() [3]minmax.F64 {
	return [3]minmax.F64{minmax.New(0, 360), minmax.Unit, minmax.Unit}
}

// RGBA implements the [color.Color] interface.
func (c HSL) RGBA() (r, g, b, a uint32) {
	return c.RGB().RGBA()
}

// AsRGBA returns the color as a [color.RGBA].
func (c HSL) AsRGBA() color.RGBA {
	return c.RGB().AsRGBA()
}

// Model is the standard [color.Model] that converts colors to [HSL].
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if h, ok := c.(HSL); ok {
		return h
	}
	return FromRGB(srgb.FromColor(c))
}

// String returns a string representation of the color.
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%.4g, %.4g, %.4g)", c.H, c.S, c.L)
}
