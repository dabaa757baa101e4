// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// pow25to7 is 25^7.
const pow25to7 = 6103515625.0

// DeltaE2000 returns the CIEDE2000 color difference between the two
// given CIE L*a*b* colors, with all parametric weighting factors at 1.
// It follows G. Sharma, W. Wu, E. N. Dalal, "The CIEDE2000 color-difference
// formula: Implementation notes, supplementary test data, and mathematical
// observations", Color Research and Application, 2005.
func DeltaE2000(l1, a1, b1, l2, a2, b2 float64) float64 {
	c1 := math.Hypot(a1, b1)
	c2 := math.Hypot(a2, b2)
	cbar7 := math.Pow((c1+c2)/2, 7)
	g := 0.5 * (1 - math.Sqrt(cbar7/(cbar7+pow25to7)))

	a1p := (1 + g) * a1
	a2p := (1 + g) * a2
	c1p := math.Hypot(a1p, b1)
	c2p := math.Hypot(a2p, b2)
	h1p := HueAngle(a1p, b1)
	h2p := HueAngle(a2p, b2)

	// either chroma zero means the hue difference is undefined, and taken as 0
	chromatic := c1p*c2p != 0

	dlp := l2 - l1
	dcp := c2p - c1p
	dhp := 0.0
	if chromatic {
		dhp = h2p - h1p
		if dhp > 180 {
			dhp -= 360
		} else if dhp < -180 {
			dhp += 360
		}
	}
	dHp := 2 * math.Sqrt(c1p*c2p) * sinDeg(dhp/2)

	lbarp := (l1 + l2) / 2
	cbarp := (c1p + c2p) / 2
	hbarp := h1p + h2p
	if chromatic {
		switch {
		case math.Abs(h1p-h2p) <= 180:
			hbarp /= 2
		case hbarp < 360:
			hbarp = (hbarp + 360) / 2
		default:
			hbarp = (hbarp - 360) / 2
		}
	}

	t := 1 - 0.17*cosDeg(hbarp-30) +
		0.24*cosDeg(2*hbarp) +
		0.32*cosDeg(3*hbarp+6) -
		0.20*cosDeg(4*hbarp-63)
	dtheta := 30 * math.Exp(-sq((hbarp-275)/25))
	cbarp7 := math.Pow(cbarp, 7)
	rc := 2 * math.Sqrt(cbarp7/(cbarp7+pow25to7))
	lbarp50 := sq(lbarp - 50)
	sl := 1 + 0.015*lbarp50/math.Sqrt(20+lbarp50)
	sc := 1 + 0.045*cbarp
	sh := 1 + 0.015*cbarp*t
	rt := -sinDeg(2*dtheta) * rc

	dl := dlp / sl
	dc := dcp / sc
	dh := dHp / sh
	return math.Sqrt(dl*dl + dc*dc + dh*dh + rt*dc*dh)
}

// AchromaticTolerance is the chroma at or below which [HueAngle]
// treats a color as neutral. It absorbs the rounding noise left on
// grays by conversions through XYZ.
const AchromaticTolerance = 1e-10

// HueAngle returns the angle of the opponent axes (a, b) in degrees,
// in [0, 360). It is 0 for neutral colors, whose chroma is at most
// [AchromaticTolerance].
func HueAngle(a, b float64) float64 {
	if math.Hypot(a, b) <= AchromaticTolerance {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h -= 360
	}
	return h
}

func sq(x float64) float64 { return x * x }

func sinDeg(d float64) float64 { return math.Sin(d * math.Pi / 180) }

func cosDeg(d float64) float64 { return math.Cos(d * math.Pi / 180) }
