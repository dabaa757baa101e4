// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package srgb provides the standard RGB (sRGB) color representation
// of IEC 61966-2-1, with components nominally from 0-1.
package srgb

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"cogentcore.org/colors/cie"
	"cogentcore.org/colors/coord"
	"cogentcore.org/colors/coord/minmax"
	"github.com/lucasb-eyer/go-colorful"
)

// White is the reference white of sRGB.
var White = cie.D65

// RGB is a color in the sRGB color space. The components are nominally
// 0-1; values outside of that range are out of gamut and are kept until
// the color is clamped.
type RGB struct {
	R float64
	G float64
	B float64
}

// New returns a new [RGB] color with the given components.
func New(r, g, b float64) RGB {
	return RGB{r, g, b}
}

// FromUint8 returns the color with the given 8-bit components.
func FromUint8(r, g, b uint8) RGB {
	return RGB{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// FromHex parses the given hex color code, in the form "#rrggbb"
// or "#rgb". The leading "#" is optional.
func FromHex(hex string) (RGB, error) {
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return RGB{}, fmt.Errorf("srgb.FromHex: invalid hex color code %q", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("srgb.FromHex: invalid hex color code %q: %w", hex, err)
	}
	return RGB{c.R, c.G, c.B}, nil
}

// FromColor returns the sRGB color for the given standard [color.Color].
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{float64(r) / 0xffff, float64(g) / 0xffff, float64(b) / 0xffff}
}

// ToXYZ returns the color in XYZ viewed under the given illuminant.
func (c RGB) ToXYZ(il cie.Illuminant) cie.XYZ {
	x, y, z := cie.SRGBToXYZ(c.R, c.G, c.B)
	return cie.XYZ{X: x, Y: y, Z: z, Illuminant: White}.Adapt(il)
}

// FromXYZ returns the sRGB color for the given XYZ color.
func (RGB) FromXYZ(xyz cie.XYZ) RGB {
	xyz = xyz.Adapt(White)
	r, g, b := cie.XYZToSRGB(xyz.X, xyz.Y, xyz.Z)
	return RGB{r, g, b}
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

// Uint8 returns the color as 8-bit components, clamped to 0-255
// and rounded half away from zero.
func (c RGB) Uint8() (r, g, b uint8) {
	return toUint8(c.R), toUint8(c.G), toUint8(c.B)
}

func toUint8(v float64) uint8 {
	return uint8(math.Round(max(0, min(1, v)) * 255))
}

// Hex returns the color as an upper case hex code, in the form "#RRGGBB".
func (c RGB) Hex() string {
	r, g, b := c.Uint8()
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// String returns the color as a hex code.
func (c RGB) String() string {
	return c.Hex()
}

// RGBA implements the [color.Color] interface, with an opaque alpha.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return toUint16(c.R), toUint16(c.G), toUint16(c.B), 0xffff
}

func toUint16(v float64) uint32 {
	return uint32(math.Round(max(0, min(1, v)) * 0xffff))
}

// AsRGBA returns the color as a [color.RGBA].
func (c RGB) AsRGBA() color.RGBA {
	r, g, b := c.Uint8()
	return color.RGBA{r, g, b, 255}
}

// Model is the standard [color.Model] that converts colors to [RGB].
var Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	if rgb, ok := c.(RGB); ok {
		return rgb
	}
	return FromColor(c)
}
