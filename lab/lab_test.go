// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lab

import (
	"testing"

	"cogentcore.org/colors/base/tolassert"
	"cogentcore.org/colors/cie"
	"cogentcore.org/colors/srgb"
	"github.com/stretchr/testify/assert"
)

func TestSRGBRed(t *testing.T) {
	c := Lab{}.FromXYZ(srgb.New(1, 0, 0).ToXYZ(cie.D65))
	tolassert.EqualTol(t, 54.29, c.L, 0.05)
	tolassert.EqualTol(t, 80.80, c.A, 0.05)
	tolassert.EqualTol(t, 69.89, c.B, 0.05)
}

func TestWhite(t *testing.T) {
	c := Lab{}.FromXYZ(cie.D50.WhitePoint())
	tolassert.EqualTol(t, 100, c.L, 1e-10)
	tolassert.EqualTol(t, 0, c.A, 1e-10)
	tolassert.EqualTol(t, 0, c.B, 1e-10)

	// the white of any illuminant is white after adaptation
	c = Lab{}.FromXYZ(cie.A.WhitePoint())
	tolassert.EqualTol(t, 100, c.L, 1e-10)
	tolassert.EqualTol(t, 0, c.A, 1e-10)
	tolassert.EqualTol(t, 0, c.B, 1e-10)

	assert.Equal(t, cie.D50, c.ToXYZ(cie.D50).Illuminant)
	assert.True(t, New(100, 0, 0).ToXYZ(cie.D65).ApproxEqual(cie.D65.WhitePoint()))
}

func TestRoundTrip(t *testing.T) {
	for _, il := range cie.Illuminants {
		for _, c := range []Lab{{50, 20, -30}, {0, 0, 0}, {100, 0, 0}, {5, -1, 2}, {70, -120, 90}} {
			have := Lab{}.FromXYZ(c.ToXYZ(il))
			tolassert.EqualTol(t, c.L, have.L, 1e-9, il.String())
			tolassert.EqualTol(t, c.A, have.A, 1e-9, il.String())
			tolassert.EqualTol(t, c.B, have.B, 1e-9, il.String())

			lch := c.LCh()
			hlch := LCh{}.FromXYZ(lch.ToXYZ(il))
			tolassert.EqualTol(t, lch.L, hlch.L, 1e-9, il.String())
			tolassert.EqualTol(t, lch.C, hlch.C, 1e-9, il.String())
			if lch.C > 1e-6 {
				tolassert.EqualTol(t, lch.H, hlch.H, 1e-7, il.String())
			}
		}
	}
}

func TestLCh(t *testing.T) {
	c := New(50, 0, 0).LCh()
	assert.Equal(t, LCh{50, 0, 0}, c)

	c = New(50, -10, -10).LCh()
	tolassert.EqualTol(t, 225, c.H, 1e-12)
	tolassert.EqualTol(t, 14.1421356, c.C, 1e-7)

	l := NewLCh(60, 20, 90).Lab()
	tolassert.EqualTol(t, 0, l.A, 1e-12)
	tolassert.EqualTol(t, 20, l.B, 1e-12)

	// negative and large hues describe the same color
	a := NewLCh(60, 20, -30).Lab()
	b := NewLCh(60, 20, 330).Lab()
	tolassert.EqualTol(t, a.A, b.A, 1e-12)
	tolassert.EqualTol(t, a.B, b.B, 1e-12)
	h := LCh{}.FromXYZ(a.ToXYZ(cie.D50))
	tolassert.EqualTol(t, 330, h.H, 1e-7)

	assert.Equal(t, c, LCh{}.FromCoord(c.Coord()))
	assert.Equal(t, "lch(50, 14.14, 225)", c.String())
	assert.Equal(t, "lab(50, -10, -10)", New(50, -10, -10).String())
}

func TestDeltaE2000(t *testing.T) {
	a := New(50, 2.6772, -79.7751)
	b := New(50, 0, -82.7485)
	tolassert.EqualTol(t, 2.0425, a.DeltaE2000(b), 1e-4)
	assert.Equal(t, 0.0, a.DeltaE2000(a))
}
