// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"math"
	"testing"

	"cogentcore.org/colors/base/tolassert"
	"github.com/stretchr/testify/assert"
)

func TestLocusSquare(t *testing.T) {
	// a unit square given directly in u'v'
	lc := &Locus{U: []float64{0, 1, 1, 0}, V: []float64{0, 0, 1, 1}}
	assert.True(t, lc.Contains(0.5, 0.5))
	assert.True(t, lc.Contains(0.01, 0.99))
	assert.False(t, lc.Contains(1.5, 0.5))
	assert.False(t, lc.Contains(0.5, -0.1))

	u, v := lc.Closest(2, 0.5)
	assert.Equal(t, 1.0, u)
	assert.Equal(t, 0.5, v)
	u, v = lc.Closest(-1, -1)
	assert.Equal(t, 0.0, u)
	assert.Equal(t, 0.0, v)
	u, v = lc.Closest(0.5, 0.9)
	assert.Equal(t, 0.5, u)
	assert.Equal(t, 1.0, v)
}

func TestSpectralLocus(t *testing.T) {
	assert.Len(t, SpectralLocus.U, 65)
	for _, il := range Illuminants {
		w := il.WhitePoint()
		assert.True(t, SpectralLocus.Contains(UVPrime(w.X, w.Y, w.Z)), il.String())
	}

	// pure Y is outside of the locus
	u, v := UVPrime(0, 1, 0)
	assert.False(t, SpectralLocus.Contains(u, v))

	cu, cv := SpectralLocus.Closest(u, v)
	tolassert.EqualTol(t, 0.0137008, cu, 1e-6)
	tolassert.EqualTol(t, 0.5778444, cv, 1e-6)
	assert.Less(t, math.Hypot(cu-u, cv-v), 0.03)
}
