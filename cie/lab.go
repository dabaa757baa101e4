// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

const (
	// labEpsilon is (6/29)^3, where the LAB compression switches
	// from linear to cube root.
	labEpsilon = 216.0 / 24389.0

	// labKappa is (29/3)^3.
	labKappa = 24389.0 / 27.0
)

// LABCompress does cube-root compression of the X, Y, Z components
// prior to their use in computing LAB components. It is linear
// near zero.
func LABCompress(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress undoes [LABCompress].
func LABUncompress(t float64) float64 {
	t3 := t * t * t
	if t3 > labEpsilon {
		return t3
	}
	return (116*t - 16) / labKappa
}

// LToY converts a perceptual lightness value (L* from 0-100)
// to a Y luminance value on the 0-100 scale.
func LToY(l float64) float64 {
	return 100 * LABUncompress((l+16)/116)
}

// YToL converts a Y luminance value on the 0-100 scale
// to a perceptual lightness value (L* from 0-100).
func YToL(y float64) float64 {
	return 116*LABCompress(y/100) - 16
}

// XYZToLAB converts a color in XYZ to CIE L*a*b*, relative to
// the given reference white (wx, wy, wz).
func XYZToLAB(x, y, z, wx, wy, wz float64) (l, a, b float64) {
	fx := LABCompress(x / wx)
	fy := LABCompress(y / wy)
	fz := LABCompress(z / wz)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts a color in CIE L*a*b* to XYZ, relative to
// the given reference white (wx, wy, wz).
func LABToXYZ(l, a, b, wx, wy, wz float64) (x, y, z float64) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x = wx * LABUncompress(fx)
	y = wy * LABUncompress(fy)
	z = wz * LABUncompress(fz)
	return
}
