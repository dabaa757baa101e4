// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"
	"testing"

	"cogentcore.org/colors/base/tolassert"
	"cogentcore.org/colors/cie"
	"cogentcore.org/colors/lab"
	"cogentcore.org/colors/rommrgb"
	"cogentcore.org/colors/srgb"
	"github.com/stretchr/testify/assert"
)

func TestIsImaginary(t *testing.T) {
	for _, c := range []srgb.RGB{
		{R: 1, G: 0, B: 0}, {R: 0, G: 1, B: 0}, {R: 0, G: 0, B: 1}, {R: 1, G: 1, B: 0}, {R: 0, G: 1, B: 1}, {R: 1, G: 0, B: 1},
		{R: 1, G: 1, B: 1}, {R: 0, G: 0, B: 0}, {R: 0.5, G: 0.5, B: 0.5}, {R: 0.2, G: 0.5, B: 0.9},
	} {
		assert.False(t, IsImaginary(c), c.Hex())
	}
	assert.True(t, IsImaginary(rommrgb.New(0, 1, 0)))
	assert.True(t, IsImaginary(rommrgb.New(0, 0, 1)))
	assert.True(t, IsImaginary(lab.New(50, 0, -200)))
	assert.True(t, IsImaginary(lab.New(50, 200, 0)))
	assert.False(t, IsImaginary(lab.New(90, -150, 0)))
	assert.True(t, IsImaginary(cie.XYZ{Y: 1, Illuminant: cie.D50}))
	assert.False(t, IsImaginary(cie.XYZ{Illuminant: cie.D65}))
}

func TestClosestRealColor(t *testing.T) {
	c := srgb.New(0.2, 0.5, 0.9)
	assert.Equal(t, c, ClosestRealColor(c))

	xyz := cie.XYZ{Y: 1, Illuminant: cie.D50}
	rc := ClosestRealColor(xyz)
	assert.False(t, IsImaginary(rc))
	assert.Equal(t, 1.0, rc.Y)
	u, v := cie.UVPrime(rc.X, rc.Y, rc.Z)
	tolassert.EqualTol(t, 0.0137008, u, 1e-5)
	tolassert.EqualTol(t, 0.5778444, v, 1e-5)

	// the result lies on the boundary of the locus
	green := ClosestRealColor(rommrgb.New(0, 1, 0))
	gxyz := green.ToXYZ(ReferenceIlluminant)
	tolassert.EqualTol(t, rommrgb.New(0, 1, 0).ToXYZ(ReferenceIlluminant).Y, gxyz.Y, 1e-9)
	gu, gv := cie.UVPrime(gxyz.X, gxyz.Y, gxyz.Z)
	cu, cv := cie.SpectralLocus.Closest(gu, gv)
	assert.Less(t, math.Hypot(gu-cu, gv-cv), 1e-6)
}
