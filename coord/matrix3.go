// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coord

import (
	"cogentcore.org/colors/base/errors"
)

// Matrix3 is a 3x3 matrix stored in row-major order.
type Matrix3 [9]float64

// Identity3 returns the 3x3 identity matrix.
func Identity3() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Diagonal3 returns a matrix with the given values on its diagonal.
func Diagonal3(v Vector3) Matrix3 {
	return Matrix3{
		v.X, 0, 0,
		0, v.Y, 0,
		0, 0, v.Z,
	}
}

// MulVector3 returns m * v.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return Vector3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// Mul returns m * o, so that m.Mul(o).MulVector3(v) applies o first.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i*3+j] = m[i*3]*o[j] + m[i*3+1]*o[3+j] + m[i*3+2]*o[6+j]
		}
	}
	return r
}

// Determinant returns the determinant of the matrix.
func (m Matrix3) Determinant() float64 {
	return m[0]*(m[4]*m[8]-m[5]*m[7]) -
		m[1]*(m[3]*m[8]-m[5]*m[6]) +
		m[2]*(m[3]*m[7]-m[4]*m[6])
}

// ErrSingular is returned by [Matrix3.Inverse] for a matrix with a zero determinant.
var ErrSingular = errors.New("coord: matrix is singular")

// Inverse returns the inverse of the matrix, computed from its adjugate.
// It returns [ErrSingular] if the determinant is zero.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix3{}, ErrSingular
	}
	id := 1 / det
	return Matrix3{
		(m[4]*m[8] - m[5]*m[7]) * id,
		(m[2]*m[7] - m[1]*m[8]) * id,
		(m[1]*m[5] - m[2]*m[4]) * id,
		(m[5]*m[6] - m[3]*m[8]) * id,
		(m[0]*m[8] - m[2]*m[6]) * id,
		(m[2]*m[3] - m[0]*m[5]) * id,
		(m[3]*m[7] - m[4]*m[6]) * id,
		(m[1]*m[6] - m[0]*m[7]) * id,
		(m[0]*m[4] - m[1]*m[3]) * id,
	}, nil
}
