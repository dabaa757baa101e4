// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coord provides the three dimensional points and 3x3 matrices
// used to embed colors into a generic coordinate space and to apply
// linear color transforms.
package coord

import (
	"fmt"
	"math"
)

// Vector3 is a point in a three dimensional color embedding.
// The meaning of each component depends on the representation
// that produced it.
type Vector3 struct {
	X float64
	Y float64
	Z float64
}

// Vec3 returns a new [Vector3] with the given components.
func Vec3(x, y, z float64) Vector3 {
	return Vector3{x, y, z}
}

// Add adds the given vector to the vector.
func (v Vector3) Add(o Vector3) Vector3 {
	return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub subtracts the given vector from the vector.
func (v Vector3) Sub(o Vector3) Vector3 {
	return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// MulScalar multiplies each component by the given scalar.
func (v Vector3) MulScalar(s float64) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// DivScalar divides each component by the given scalar.
func (v Vector3) DivScalar(s float64) Vector3 {
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

// WeightedMidpoint returns v*w + o*(1-w). A weight of 1 returns v and
// a weight of 0 returns o.
func (v Vector3) WeightedMidpoint(o Vector3, w float64) Vector3 {
	return v.MulScalar(w).Add(o.MulScalar(1 - w))
}

// Midpoint returns the point halfway between v and o.
func (v Vector3) Midpoint(o Vector3) Vector3 {
	return v.WeightedMidpoint(o, 0.5)
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vector3) DistanceTo(o Vector3) float64 {
	d := v.Sub(o)
	return math.Sqrt(d.X*d.X + d.Y*d.Y + d.Z*d.Z)
}

// Average returns the centroid of v and the given other points.
func (v Vector3) Average(others ...Vector3) Vector3 {
	sum := v
	for _, o := range others {
		sum = sum.Add(o)
	}
	return sum.DivScalar(float64(len(others) + 1))
}

// Dim returns the component for the given dimension: 0 = X, 1 = Y, 2 = Z.
// It panics for any other dimension.
func (v Vector3) Dim(dim int) float64 {
	switch dim {
	case 0:
		return v.X
	case 1:
		return v.Y
	case 2:
		return v.Z
	}
	panic(fmt.Sprintf("coord.Vector3.Dim: invalid dimension %d", dim))
}

// SetDim sets the component for the given dimension: 0 = X, 1 = Y, 2 = Z.
// It panics for any other dimension.
func (v *Vector3) SetDim(dim int, value float64) {
	switch dim {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	case 2:
		v.Z = value
	default:
		panic(fmt.Sprintf("coord.Vector3.SetDim: invalid dimension %d", dim))
	}
}

// String returns a string representation of the vector.
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
