// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"image/color"
	"math"

	"cogentcore.org/colors/coord/minmax"
	"cogentcore.org/colors/srgb"
)

// fromColor returns the [HSL] color for any [color.Color].
func fromColor(c color.Color) HSL {
	return FromRGB(srgb.FromColor(c))
}

// Lighten returns a color that is lighter by the given absolute
// HSL lightness amount (0-100, ranges enforced).
func Lighten(c color.Color, amount float64) color.RGBA {
	h := fromColor(c)
	h.L = minmax.Unit.ClipValue(h.L + amount/100)
	return h.AsRGBA()
}

// Darken returns a color that is darker by the given absolute
// HSL lightness amount (0-100, ranges enforced).
func Darken(c color.Color, amount float64) color.RGBA {
	return Lighten(c, -amount)
}

// Highlight returns a color that is lighter or darker by the
// given absolute HSL lightness amount (0-100, ranges enforced),
// making the color darker if it is light (L >= 0.5) and
// lighter otherwise. It is the opposite of [Samelight].
func Highlight(c color.Color, amount float64) color.RGBA {
	if fromColor(c).L >= 0.5 {
		return Lighten(c, -amount)
	}
	return Lighten(c, amount)
}

// Samelight returns a color that is lighter or darker by the
// given absolute HSL lightness amount (0-100, ranges enforced),
// making the color lighter if it is light (L >= 0.5) and
// darker otherwise. It is the opposite of [Highlight].
func Samelight(c color.Color, amount float64) color.RGBA {
	return Highlight(c, -amount)
}

// Saturate returns a color that is more saturated by the given
// absolute HSL saturation amount (0-100, ranges enforced).
func Saturate(c color.Color, amount float64) color.RGBA {
	h := fromColor(c)
	h.S = minmax.Unit.ClipValue(h.S + amount/100)
	return h.AsRGBA()
}

// Desaturate returns a color that is less saturated by the given
// absolute HSL saturation amount (0-100, ranges enforced).
func Desaturate(c color.Color, amount float64) color.RGBA {
	return Saturate(c, -amount)
}

// Spin returns a color with its hue rotated by the given number of
// degrees. The result wraps around to stay within 0-360.
func Spin(c color.Color, amount float64) color.RGBA {
	h := fromColor(c)
	h.H = math.Mod(h.H+amount, 360)
	if h.H < 0 {
		h.H += 360
	}
	return h.AsRGBA()
}

// IsLight returns whether the given color is light
// (has an HSL lightness greater than or equal to 0.6).
func IsLight(c color.Color) bool {
	return fromColor(c).L >= 0.6
}

// IsDark returns whether the given color is dark
// (has an HSL lightness less than 0.6).
func IsDark(c color.Color) bool {
	return !IsLight(c)
}

// ContrastColor returns the color that should be used to contrast
// this color (white or black), based on the result of [IsLight].
func ContrastColor(c color.Color) color.RGBA {
	if IsLight(c) {
		return color.RGBA{0, 0, 0, 255}
	}
	return color.RGBA{255, 255, 255, 255}
}
