// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "cogentcore.org/colors/coord"

// PrimariesMatrix returns the matrix that converts linear RGB into XYZ
// viewed under the given white, for an RGB space whose red, green and
// blue primaries have the given (x, y) chromaticities. The columns are
// scaled so that RGB (1, 1, 1) maps exactly to the white point.
// It returns an error if the primaries are not linearly independent.
func PrimariesMatrix(r, g, b [2]float64, white Illuminant) (coord.Matrix3, error) {
	p := coord.Matrix3{
		r[0] / r[1], g[0] / g[1], b[0] / b[1],
		1, 1, 1,
		(1 - r[0] - r[1]) / r[1], (1 - g[0] - g[1]) / g[1], (1 - b[0] - b[1]) / b[1],
	}
	inv, err := p.Inverse()
	if err != nil {
		return coord.Matrix3{}, err
	}
	s := inv.MulVector3(white.WhitePoint().Vector3())
	return p.Mul(coord.Diagonal3(s)), nil
}
