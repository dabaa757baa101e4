// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"math"

	"cogentcore.org/colors/base/errors"
	"cogentcore.org/colors/coord"
	"cogentcore.org/colors/coord/minmax"
)

// ErrMismatchedWeights is returned by [WeightedAverage] when the number
// of weights differs from the number of colors.
var ErrMismatchedWeights = errors.New("colors: number of weights does not match number of colors")

// Point is a [Space] with an embedding in 3D Euclidean space, which
// enables the geometric operations of this package. Coord returns the
// components in field order and FromCoord is its inverse; like FromXYZ,
// FromCoord is called on the zero value.
type Point[T any] interface {
	Space[T]

	// Coord returns the color as a point in 3D space.
	Coord() coord.Vector3

	// FromCoord returns the T at the given point in 3D space.
	FromCoord(v coord.Vector3) T
}

func fromCoord[T Point[T]](v coord.Vector3) T {
	var t T
	return t.FromCoord(v)
}

// EuclideanDistance returns the straight line distance between two colors
// in the embedding of T. It is generally not perceptually meaningful;
// see [Distance] for that.
func EuclideanDistance[T Point[T]](a, b T) float64 {
	return a.Coord().DistanceTo(b.Coord())
}

// WeightedMidpoint returns the point a*w + b*(1-w) in the embedding of T,
// so a weight of 1 gives a and a weight of 0 gives b.
func WeightedMidpoint[T Point[T]](a, b T, w float64) T {
	return fromCoord[T](a.Coord().WeightedMidpoint(b.Coord(), w))
}

// Mix returns the midpoint of the two colors in the embedding of T.
func Mix[T Point[T]](a, b T) T {
	return WeightedMidpoint(a, b, 0.5)
}

// WeightedAverage returns the weighted average of the given colors in the
// embedding of T. The weights are normalized to sum to 1. It returns
// [ErrMismatchedWeights] if the lengths of cs and ws differ.
func WeightedAverage[T Point[T]](cs []T, ws []float64) (T, error) {
	var zero T
	if len(cs) != len(ws) {
		return zero, ErrMismatchedWeights
	}
	sum := 0.0
	for _, w := range ws {
		sum += w
	}
	var v coord.Vector3
	for i, c := range cs {
		v = v.Add(c.Coord().MulScalar(ws[i] / sum))
	}
	return fromCoord[T](v), nil
}

// Average returns the unweighted average of the given colors in the
// embedding of T. It returns the zero value if no colors are given.
func Average[T Point[T]](cs ...T) T {
	if len(cs) == 0 {
		var zero T
		return zero
	}
	vs := make([]coord.Vector3, len(cs)-1)
	for i, c := range cs[1:] {
		vs[i] = c.Coord()
	}
	return fromCoord[T](cs[0].Coord().Average(vs...))
}

// Gradient returns a function that maps 0 to a and 1 to b, linearly in
// the embedding of T. Values outside of 0-1 extrapolate.
func Gradient[T Point[T]](a, b T) func(x float64) T {
	return func(x float64) T {
		return WeightedMidpoint(b, a, x)
	}
}

// CbrtGradient is like [Gradient], but interpolates along the cube root
// of x, which moves away from a faster.
func CbrtGradient[T Point[T]](a, b T) func(x float64) T {
	return func(x float64) T {
		return WeightedMidpoint(b, a, math.Cbrt(x))
	}
}

// PaddedGradient is like [Gradient], but maps 0-1 onto the sub range pad
// of the full a to b gradient. For example, a pad of (0.1, 0.9) trims the
// first and last tenth of the gradient.
func PaddedGradient[T Point[T]](a, b T, pad minmax.F64) func(x float64) T {
	return func(x float64) T {
		return WeightedMidpoint(b, a, pad.ProjValue(x))
	}
}

// GradientScale returns a followed by n evenly spaced colors between a
// and b, followed by b.
func GradientScale[T Point[T]](a, b T, n int) []T {
	n = max(n, 0)
	cs := make([]T, n+2)
	for i := range cs {
		cs[i] = WeightedMidpoint(b, a, float64(i)/float64(n+1))
	}
	return cs
}
