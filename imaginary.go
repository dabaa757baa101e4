// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"cogentcore.org/colors/cie"
)

// realNudge is the fraction of the distance toward the white point that
// [ClosestRealColor] moves a boundary chromaticity, so that the result
// tests as real despite rounding.
const realNudge = 1e-6

// IsImaginary returns whether the color lies outside of the gamut of
// human vision, meaning that its chromaticity is outside of
// [cie.SpectralLocus]. Such colors are valid values, and are produced
// by, for example, the primaries of wide gamut spaces, but no light can
// produce them. Black is real.
func IsImaginary(c Color) bool {
	xyz := c.ToXYZ(ReferenceIlluminant)
	if xyz.X+15*xyz.Y+3*xyz.Z == 0 {
		return false
	}
	u, v := cie.UVPrime(xyz.X, xyz.Y, xyz.Z)
	return !cie.SpectralLocus.Contains(u, v)
}

// ClosestRealColor returns the real color closest in chromaticity to the
// given color, keeping its luminance. Real colors are returned unchanged.
func ClosestRealColor[T Space[T]](c T) T {
	if !IsImaginary(c) {
		return c
	}
	xyz := c.ToXYZ(ReferenceIlluminant)
	u, v := cie.UVPrime(xyz.X, xyz.Y, xyz.Z)
	cu, cv := cie.SpectralLocus.Closest(u, v)
	w := ReferenceIlluminant.WhitePoint()
	wu, wv := cie.UVPrime(w.X, w.Y, w.Z)
	cu += (wu - cu) * realNudge
	cv += (wv - cv) * realNudge
	x, y, z := cie.UVPrimeToXYZ(cu, cv, xyz.Y)
	return Convert[T](cie.XYZ{X: x, Y: y, Z: z, Illuminant: ReferenceIlluminant})
}
