// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"testing"

	"cogentcore.org/colors/base/tolassert"
)

func TestLAB(t *testing.T) {
	tolassert.Equal(t, 0.887904, LABCompress(0.7))
	tolassert.Equal(t, 0.1379544, LABCompress(0.000003))
	tolassert.Equal(t, 0.21600002, LABUncompress(0.6))

	w := D65.WhitePoint()
	l, a, b := XYZToLAB(0.1, 0.3, 0.5, w.X, w.Y, w.Z)
	tolassert.Equal(t, 61.65422, l)
	tolassert.Equal(t, -98.673805, a)
	tolassert.Equal(t, -20.413673, b)

	x, y, z := LABToXYZ(28, 14, 36.2, w.X, w.Y, w.Z)
	tolassert.Equal(t, 0.06422656, x)
	tolassert.Equal(t, 0.054573778, y)
	tolassert.Equal(t, 0.008442593, z)

	tolassert.Equal(t, 2.3023312, LToY(17))
	tolassert.Equal(t, 21.579498, YToL(3.4))
}

func TestLABRoundTrip(t *testing.T) {
	w := D50.WhitePoint()
	for _, c := range [][3]float64{{0, 0, 0}, {0.2, 0.5, 0.1}, {0.001, 0.002, 0.0005}, {-0.1, 0.4, 1.3}, {w.X, w.Y, w.Z}} {
		l, a, b := XYZToLAB(c[0], c[1], c[2], w.X, w.Y, w.Z)
		x, y, z := LABToXYZ(l, a, b, w.X, w.Y, w.Z)
		tolassert.EqualTol(t, c[0], x, 1e-12)
		tolassert.EqualTol(t, c[1], y, 1e-12)
		tolassert.EqualTol(t, c[2], z, 1e-12)
	}
	l, a, b := XYZToLAB(w.X, w.Y, w.Z, w.X, w.Y, w.Z)
	tolassert.EqualTol(t, 100, l, 1e-12)
	tolassert.EqualTol(t, 0, a, 1e-12)
	tolassert.EqualTol(t, 0, b, 1e-12)
}

func TestLUV(t *testing.T) {
	w := D50.WhitePoint()
	l, u, v := XYZToLUV(0.1, 0.3, 0.5, w.X, w.Y, w.Z)
	tolassert.Equal(t, 61.654222, l)
	tolassert.Equal(t, -115.085107, u)
	tolassert.Equal(t, -36.428745, v)

	x, y, z := LUVToXYZ(l, u, v, w.X, w.Y, w.Z)
	tolassert.EqualTol(t, 0.1, x, 1e-12)
	tolassert.EqualTol(t, 0.3, y, 1e-12)
	tolassert.EqualTol(t, 0.5, z, 1e-12)

	l, u, v = XYZToLUV(0, 0, 0, w.X, w.Y, w.Z)
	tolassert.EqualTol(t, 0, l, 0)
	tolassert.EqualTol(t, 0, u, 0)
	tolassert.EqualTol(t, 0, v, 0)

	x, y, z = LUVToXYZ(0, 20, -30, w.X, w.Y, w.Z)
	tolassert.EqualTol(t, 0, x, 0)
	tolassert.EqualTol(t, 0, y, 0)
	tolassert.EqualTol(t, 0, z, 0)
}

func TestUVPrime(t *testing.T) {
	u, v := UVPrime(0, 1, 0)
	tolassert.EqualTol(t, 0, u, 1e-15)
	tolassert.EqualTol(t, 0.6, v, 1e-15)

	u, v = UVPrime(0, 0, 0)
	tolassert.EqualTol(t, 0, u, 0)
	tolassert.EqualTol(t, 0, v, 0)

	// the same chromaticity reached from XYZ and from xy
	w := D65.WhitePoint()
	u, v = UVPrime(w.X, w.Y, w.Z)
	s := w.X + w.Y + w.Z
	xu, xv := XYToUVPrime(w.X/s, w.Y/s)
	tolassert.EqualTol(t, u, xu, 1e-12)
	tolassert.EqualTol(t, v, xv, 1e-12)

	x, y, z := UVPrimeToXYZ(u, v, 1)
	tolassert.EqualTol(t, w.X, x, 1e-12)
	tolassert.EqualTol(t, w.Y, y, 1e-12)
	tolassert.EqualTol(t, w.Z, z, 1e-12)
}
