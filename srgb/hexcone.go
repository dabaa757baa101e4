// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srgb

import "math"

// GrayTolerance is the hexcone chroma at or below which a color is
// treated as gray, absorbing the rounding noise of conversions
// through XYZ.
const GrayTolerance = 1e-10

// Hexcone returns the hexagonal projection of the color used by HSL and
// HSV: the hue in degrees from 0-360 (0 for grays), the chroma, and
// the largest and smallest of the components. Colors with a chroma of
// at most [GrayTolerance] are grays, with a hue and chroma of 0.
func (c RGB) Hexcone() (hue, chroma, mx, mn float64) {
	mx = max(c.R, c.G, c.B)
	mn = min(c.R, c.G, c.B)
	chroma = mx - mn
	switch {
	case chroma <= GrayTolerance:
		hue, chroma = 0, 0
	case mx == c.R:
		hue = math.Mod((c.G-c.B)/chroma, 6) * 60
	case mx == c.G:
		hue = (c.B-c.R)/chroma*60 + 120
	default:
		hue = (c.R-c.G)/chroma*60 + 240
	}
	if hue < 0 {
		hue += 360
	}
	return
}

// FromHexcone returns the color with the given hue in degrees, chroma,
// and offset added to every component. It undoes [RGB.Hexcone], where
// the offset is the smallest component. Any hue is wrapped into 0-360.
func FromHexcone(hue, chroma, offset float64) RGB {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	x := chroma * (1 - math.Abs(math.Mod(hue/60, 2)-1))
	var r, g, b float64
	switch {
	case hue <= 60:
		r, g, b = chroma, x, 0
	case hue <= 120:
		r, g, b = x, chroma, 0
	case hue <= 180:
		r, g, b = 0, chroma, x
	case hue <= 240:
		r, g, b = 0, x, chroma
	case hue <= 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}
	return RGB{r + offset, g + offset, b + offset}
}
