// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// UVPrime returns the CIE 1976 u', v' chromaticity of the given XYZ
// components. Black, which has no chromaticity, returns 0, 0.
func UVPrime(x, y, z float64) (u, v float64) {
	d := x + 15*y + 3*z
	if d == 0 {
		return 0, 0
	}
	return 4 * x / d, 9 * y / d
}

// XYToUVPrime converts CIE 1931 x, y chromaticity to CIE 1976 u', v'.
func XYToUVPrime(x, y float64) (u, v float64) {
	d := -2*x + 12*y + 3
	return 4 * x / d, 9 * y / d
}

// UVPrimeToXYZ returns the XYZ components with the given luminance y
// and u', v' chromaticity. A v' of 0 returns black.
func UVPrimeToXYZ(u, v, y float64) (float64, float64, float64) {
	if v == 0 {
		return 0, 0, 0
	}
	x := y * 9 * u / (4 * v)
	z := y * (12 - 3*u - 20*v) / (4 * v)
	return x, y, z
}

// XYZToLUV converts a color in XYZ to CIE L*u*v*, relative to
// the given reference white (wx, wy, wz). Black returns 0, 0, 0.
func XYZToLUV(x, y, z, wx, wy, wz float64) (l, u, v float64) {
	if x+15*y+3*z == 0 {
		return 0, 0, 0
	}
	up, vp := UVPrime(x, y, z)
	un, vn := UVPrime(wx, wy, wz)
	l = YToL(100 * y / wy)
	u = 13 * l * (up - un)
	v = 13 * l * (vp - vn)
	return
}

// LUVToXYZ converts a color in CIE L*u*v* to XYZ, relative to
// the given reference white (wx, wy, wz). A lightness of 0 returns black.
func LUVToXYZ(l, u, v, wx, wy, wz float64) (x, y, z float64) {
	if l == 0 {
		return 0, 0, 0
	}
	un, vn := UVPrime(wx, wy, wz)
	up := u/(13*l) + un
	vp := v/(13*l) + vn
	return UVPrimeToXYZ(up, vp, wy*LToY(l)/100)
}
