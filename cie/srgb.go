// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"math"

	"cogentcore.org/colors/base/errors"
	"cogentcore.org/colors/coord"
)

// SRGBToXYZMatrix converts linear sRGB into XYZ viewed under D65. It is
// derived from the IEC 61966-2-1 primaries and [D65], so that sRGB white
// is exactly the D65 white point and grays are achromatic.
var SRGBToXYZMatrix = errors.Must1(PrimariesMatrix([2]float64{0.64, 0.33}, [2]float64{0.30, 0.60}, [2]float64{0.15, 0.06}, D65))

// XYZToSRGBMatrix is the inverse of [SRGBToXYZMatrix].
var XYZToSRGBMatrix = errors.Must1(SRGBToXYZMatrix.Inverse())

const (
	// srgbLinearCutoff is the linear value at or below which the sRGB
	// transfer function is linear.
	srgbLinearCutoff = 0.0031308

	// srgbEncodedCutoff is the encoded value of srgbLinearCutoff. It is
	// used by decoding so that both directions switch at the same point.
	srgbEncodedCutoff = 12.92 * srgbLinearCutoff
)

// SRGBToLinearComp converts an sRGB rgb component to linear space
// (removes gamma). The transfer is odd symmetric so that negative
// components of out-of-gamut colors round trip.
func SRGBToLinearComp(srgb float64) float64 {
	a := math.Abs(srgb)
	if a <= srgbEncodedCutoff {
		return srgb / 12.92
	}
	return math.Copysign(math.Pow((a+0.055)/1.055, 2.4), srgb)
}

// SRGBFromLinearComp converts an sRGB rgb linear component
// to non-linear (gamma corrected) sRGB value.
func SRGBFromLinearComp(lin float64) float64 {
	a := math.Abs(lin)
	if a <= srgbLinearCutoff {
		return 12.92 * lin
	}
	return math.Copysign(1.055*math.Pow(a, 1/2.4)-0.055, lin)
}

// SRGBLinToXYZ converts sRGB linear into XYZ viewed under D65.
func SRGBLinToXYZ(rl, gl, bl float64) (x, y, z float64) {
	v := SRGBToXYZMatrix.MulVector3(coord.Vec3(rl, gl, bl))
	return v.X, v.Y, v.Z
}

// XYZToSRGBLin converts XYZ viewed under D65 into sRGB linear.
func XYZToSRGBLin(x, y, z float64) (rl, gl, bl float64) {
	v := XYZToSRGBMatrix.MulVector3(coord.Vec3(x, y, z))
	return v.X, v.Y, v.Z
}

// SRGBToXYZ converts sRGB into XYZ viewed under D65.
func SRGBToXYZ(r, g, b float64) (x, y, z float64) {
	return SRGBLinToXYZ(SRGBToLinearComp(r), SRGBToLinearComp(g), SRGBToLinearComp(b))
}

// XYZToSRGB converts XYZ viewed under D65 into sRGB.
func XYZToSRGB(x, y, z float64) (r, g, b float64) {
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	return SRGBFromLinearComp(rl), SRGBFromLinearComp(gl), SRGBFromLinearComp(bl)
}
