// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"math"
	"testing"

	"cogentcore.org/colors/base/tolassert"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

// sharmaTests is the CIEDE2000 test data from Sharma, Wu, and Dalal:
// L1, a1, b1, L2, a2, b2, and the expected difference.
var sharmaTests = [][7]float64{
	{50, 2.6772, -79.7751, 50, 0, -82.7485, 2.0425},
	{50, 3.1571, -77.2803, 50, 0, -82.7485, 2.8615},
	{50, 2.8361, -74.02, 50, 0, -82.7485, 3.4412},
	{50, -1.3802, -84.2814, 50, 0, -82.7485, 1},
	{50, -1.1848, -84.8006, 50, 0, -82.7485, 1},
	{50, -0.9009, -85.5211, 50, 0, -82.7485, 1},
	{50, 0, 0, 50, -1, 2, 2.3669},
	{50, -1, 2, 50, 0, 0, 2.3669},
	{50, 2.49, -0.001, 50, -2.49, 0.0009, 7.1792},
	{50, 2.49, -0.001, 50, -2.49, 0.001, 7.1792},
	{50, 2.49, -0.001, 50, -2.49, 0.0011, 7.2195},
	{50, 2.49, -0.001, 50, -2.49, 0.0012, 7.2195},
	{50, -0.001, 2.49, 50, 0.0009, -2.49, 4.8045},
	{50, -0.001, 2.49, 50, 0.001, -2.49, 4.8045},
	{50, -0.001, 2.49, 50, 0.0011, -2.49, 4.7461},
	{50, 2.5, 0, 50, 0, -2.5, 4.3065},
	{50, 2.5, 0, 73, 25, -18, 27.1492},
	{50, 2.5, 0, 61, -5, 29, 22.8977},
	{50, 2.5, 0, 56, -27, -3, 31.903},
	{50, 2.5, 0, 58, 24, 15, 19.4535},
	{50, 2.5, 0, 50, 3.1736, 0.5854, 1},
	{50, 2.5, 0, 50, 3.2972, 0, 1},
	{50, 2.5, 0, 50, 1.8634, 0.5757, 1},
	{50, 2.5, 0, 50, 3.2592, 0.335, 1},
	{60.2574, -34.0099, 36.2677, 60.4626, -34.1751, 39.4387, 1.2644},
	{63.0109, -31.0961, -5.8663, 62.8187, -29.7946, -4.0864, 1.263},
	{61.2901, 3.7196, -5.3901, 61.4292, 2.248, -4.962, 1.8731},
	{35.0831, -44.1164, 3.7933, 35.0232, -40.0716, 1.5901, 1.8645},
	{22.7233, 20.0904, -46.694, 23.0331, 14.973, -42.5619, 2.0373},
	{36.4612, 47.858, 18.3852, 36.2715, 50.5065, 21.2231, 1.4146},
	{90.8027, -2.0831, 1.441, 91.1528, -1.6435, 0.0447, 1.4441},
	{90.9257, -0.5406, -0.9208, 88.6381, -0.8985, -0.7239, 1.5381},
	{6.7747, -0.2908, -2.4247, 5.8714, -0.0985, -2.2286, 0.6377},
	{2.0776, 0.0795, -1.135, 0.9033, -0.0636, -0.5514, 0.9082},
}

func TestDeltaE2000(t *testing.T) {
	for i, tc := range sharmaTests {
		d := DeltaE2000(tc[0], tc[1], tc[2], tc[3], tc[4], tc[5])
		tolassert.EqualTol(t, tc[6], d, 1e-4, "row %d", i+1)
		r := DeltaE2000(tc[3], tc[4], tc[5], tc[0], tc[1], tc[2])
		tolassert.EqualTol(t, d, r, 1e-12, "row %d reversed", i+1)
	}
}

func TestDeltaE2000Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, DeltaE2000(50, 0, 0, 50, 0, 0))
	assert.Equal(t, 0.0, DeltaE2000(41.2, -13, 22.5, 41.2, -13, 22.5))

	// achromatic pairs only differ in lightness
	d := DeltaE2000(30, 0, 0, 70, 0, 0)
	assert.False(t, math.IsNaN(d))
	assert.Greater(t, d, 0.0)
}

// TestDeltaE2000Colorful checks against an independent implementation,
// which works with L, a, b scaled down by 100.
func TestDeltaE2000Colorful(t *testing.T) {
	for i, tc := range sharmaTests {
		if i < 16 || (i >= 20 && i < 24) {
			// hue discontinuities make these rows sensitive to the
			// rounding of the round trip through colorful.Color
			continue
		}
		c1 := colorful.Lab(tc[0]/100, tc[1]/100, tc[2]/100)
		c2 := colorful.Lab(tc[3]/100, tc[4]/100, tc[5]/100)
		want := c1.DistanceCIEDE2000(c2) * 100
		tolassert.EqualTol(t, want, DeltaE2000(tc[0], tc[1], tc[2], tc[3], tc[4], tc[5]), 1e-3, "row %d", i+1)
	}
}

func TestHueAngle(t *testing.T) {
	assert.Equal(t, 0.0, HueAngle(0, 0))
	tolassert.EqualTol(t, 90, HueAngle(0, 5), 1e-12)
	tolassert.EqualTol(t, 180, HueAngle(-1, 0), 1e-12)
	tolassert.EqualTol(t, 270, HueAngle(0, -2), 1e-12)
	tolassert.EqualTol(t, 315, HueAngle(1, -1), 1e-12)
}
