// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"

	"cogentcore.org/colors/lab"
)

// JND is the just noticeable difference, as a CIEDE2000 distance.
// Colors closer than this are considered visually indistinguishable.
const JND = 1.0

// Hue returns the CIELCh hue of the color, in degrees from 0 to 360.
func Hue(c Color) float64 {
	return Convert[lab.LCh](c).H
}

// SetHue returns the color with its CIELCh hue replaced by the given
// value. The hue is wrapped into the range 0-360.
func SetHue[T Space[T]](c T, hue float64) T {
	lch := Convert[lab.LCh](c)
	lch.H = wrapHue(hue)
	return Convert[T](lch)
}

// Lightness returns the CIELAB lightness of the color, from 0 to 100.
func Lightness(c Color) float64 {
	return Convert[lab.LCh](c).L
}

// SetLightness returns the color with its CIELAB lightness replaced by
// the given value, clamped to 0-100.
func SetLightness[T Space[T]](c T, lightness float64) T {
	lch := Convert[lab.LCh](c)
	lch.L = min(max(lightness, 0), 100)
	return Convert[T](lch)
}

// Chroma returns the CIELCh chroma of the color. It is 0 for grays
// and has no fixed upper bound.
func Chroma(c Color) float64 {
	return Convert[lab.LCh](c).C
}

// SetChroma returns the color with its CIELCh chroma replaced by the
// given value. Negative values are clamped to 0. Large values may produce
// an imaginary color; see [IsImaginary].
func SetChroma[T Space[T]](c T, chroma float64) T {
	lch := Convert[lab.LCh](c)
	lch.C = max(chroma, 0)
	return Convert[T](lch)
}

// Saturation returns the CIELCh saturation of the color, which is its
// chroma relative to its lightness. It is 0 for black.
func Saturation(c Color) float64 {
	lch := Convert[lab.LCh](c)
	if lch.L == 0 {
		return 0
	}
	return lch.C / lch.L
}

// SetSaturation returns the color with the given saturation, keeping
// its lightness and hue. Negative values are clamped to 0.
func SetSaturation[T Space[T]](c T, saturation float64) T {
	lch := Convert[lab.LCh](c)
	lch.C = max(saturation, 0) * lch.L
	return Convert[T](lch)
}

// Grayscale returns the gray with the same lightness as the color.
func Grayscale[T Space[T]](c T) T {
	return SetChroma(c, 0)
}

// Distance returns the perceptual distance between two colors,
// using the CIEDE2000 formula in CIELAB.
func Distance(a, b Color) float64 {
	return Convert[lab.Lab](a).DeltaE2000(Convert[lab.Lab](b))
}

// VisuallyIndistinguishable returns whether the two colors are within
// one [JND] of each other.
func VisuallyIndistinguishable(a, b Color) bool {
	return Distance(a, b) <= JND
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
