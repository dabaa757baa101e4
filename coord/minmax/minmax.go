// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package minmax provides a struct that holds Min and Max values,
// used for per-axis gamut bounds and range padding.
package minmax

// F64 represents a min / max range for float64 values.
type F64 struct {
	Min float64
	Max float64
}

// New returns a new range with the given min and max values.
func New(mn, mx float64) F64 {
	return F64{Min: mn, Max: mx}
}

// Unit is the 0-1 range.
var Unit = F64{0, 1}

// InRange tests whether value is within the range (>= Min and <= Max)
func (mr F64) InRange(val float64) bool {
	return val >= mr.Min && val <= mr.Max
}

// Range returns Max - Min
func (mr F64) Range() float64 {
	return mr.Max - mr.Min
}

// Expand returns the range widened by tol on both ends.
func (mr F64) Expand(tol float64) F64 {
	return F64{mr.Min - tol, mr.Max + tol}
}

// ProjValue projects a 0-1 normalized unit value into the Min / Max range.
func (mr F64) ProjValue(val float64) float64 {
	return mr.Min + (val * mr.Range())
}

// ClipValue clips given value within Min / Max range
// Note: a NaN will remain as a NaN
func (mr F64) ClipValue(val float64) float64 {
	if val < mr.Min {
		return mr.Min
	}
	if val > mr.Max {
		return mr.Max
	}
	return val
}
