// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "math"

// Locus is a closed polygon in the CIE 1976 u'v' chromaticity diagram.
// The last vertex connects back to the first.
type Locus struct {
	U []float64
	V []float64
}

// NewLocus returns a new [Locus] with vertices at the given
// CIE 1931 x, y chromaticities, in order.
func NewLocus(xy [][2]float64) *Locus {
	lc := &Locus{U: make([]float64, len(xy)), V: make([]float64, len(xy))}
	for i, p := range xy {
		lc.U[i], lc.V[i] = XYToUVPrime(p[0], p[1])
	}
	return lc
}

// Contains returns whether the given u', v' chromaticity is inside
// the polygon, using ray casting.
func (lc *Locus) Contains(u, v float64) bool {
	in := false
	n := len(lc.U)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		ui, vi := lc.U[i], lc.V[i]
		uj, vj := lc.U[j], lc.V[j]
		if (vi > v) != (vj > v) && u < (uj-ui)*(v-vi)/(vj-vi)+ui {
			in = !in
		}
	}
	return in
}

// Closest returns the point on the boundary of the polygon that is
// closest to the given u', v' chromaticity.
func (lc *Locus) Closest(u, v float64) (cu, cv float64) {
	best := math.Inf(1)
	n := len(lc.U)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pu, pv := closestOnSegment(u, v, lc.U[j], lc.V[j], lc.U[i], lc.V[i])
		d := sq(pu-u) + sq(pv-v)
		if d < best {
			best = d
			cu, cv = pu, pv
		}
	}
	return
}

// closestOnSegment returns the point on the segment from (au, av) to
// (bu, bv) that is closest to (u, v).
func closestOnSegment(u, v, au, av, bu, bv float64) (float64, float64) {
	du, dv := bu-au, bv-av
	l2 := du*du + dv*dv
	if l2 == 0 {
		return au, av
	}
	t := ((u-au)*du + (v-av)*dv) / l2
	t = max(0, min(1, t))
	return au + t*du, av + t*dv
}

// SpectralLocus is the CIE 1931 2° standard observer spectral locus from
// 380 to 700 nm, closed by the line of purples. Chromaticities outside of
// it cannot be produced by any physical light.
var SpectralLocus = NewLocus(spectralLocusXY)

// spectralLocusXY is the CIE 1931 2° x, y chromaticity of monochromatic
// light at 5 nm steps from 380 to 700 nm.
var spectralLocusXY = [][2]float64{
	{0.1741, 0.0050}, {0.1740, 0.0050}, {0.1738, 0.0049}, {0.1736, 0.0049}, {0.1733, 0.0048}, // 380
	{0.1730, 0.0048}, {0.1726, 0.0048}, {0.1721, 0.0048}, {0.1714, 0.0051}, {0.1703, 0.0058}, // 405
	{0.1689, 0.0069}, {0.1669, 0.0086}, {0.1644, 0.0109}, {0.1611, 0.0138}, {0.1566, 0.0177}, // 430
	{0.1510, 0.0227}, {0.1440, 0.0297}, {0.1355, 0.0399}, {0.1241, 0.0578}, {0.1096, 0.0868}, // 455
	{0.0913, 0.1327}, {0.0687, 0.2007}, {0.0454, 0.2950}, {0.0235, 0.4127}, {0.0082, 0.5384}, // 480
	{0.0039, 0.6548}, {0.0139, 0.7502}, {0.0389, 0.8120}, {0.0743, 0.8338}, {0.1142, 0.8262}, // 505
	{0.1547, 0.8059}, {0.1929, 0.7816}, {0.2296, 0.7543}, {0.2658, 0.7243}, {0.3016, 0.6923}, // 530
	{0.3373, 0.6589}, {0.3731, 0.6245}, {0.4087, 0.5896}, {0.4441, 0.5547}, {0.4788, 0.5202}, // 555
	{0.5125, 0.4866}, {0.5448, 0.4544}, {0.5752, 0.4242}, {0.6029, 0.3965}, {0.6270, 0.3725}, // 580
	{0.6482, 0.3514}, {0.6658, 0.3340}, {0.6801, 0.3197}, {0.6915, 0.3083}, {0.7006, 0.2993}, // 605
	{0.7079, 0.2920}, {0.7140, 0.2859}, {0.7190, 0.2809}, {0.7230, 0.2770}, {0.7260, 0.2740}, // 630
	{0.7283, 0.2717}, {0.7300, 0.2700}, {0.7311, 0.2689}, {0.7320, 0.2680}, {0.7327, 0.2673}, // 655
	{0.7334, 0.2666}, {0.7340, 0.2660}, {0.7344, 0.2656}, {0.7346, 0.2654}, {0.7347, 0.2653}, // 680
}
