// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import (
	"cogentcore.org/colors/base/errors"
	"cogentcore.org/colors/coord"
)

// Bradford is the Bradford matrix, which transforms XYZ into a
// sharpened cone response space.
var Bradford = coord.Matrix3{
	0.8951, 0.2664, -0.1614,
	-0.7502, 1.7135, 0.0367,
	0.0389, -0.0685, 1.0296,
}

// BradfordInverse is the inverse of [Bradford].
var BradfordInverse = errors.Must1(Bradford.Inverse())

// AdaptationMatrix returns the matrix that converts XYZ viewed under from
// into XYZ viewed under to, using Bradford cone responses with a full
// (von Kries) scaling of each channel. It returns the identity matrix
// if the two illuminants are the same.
func AdaptationMatrix(from, to Illuminant) coord.Matrix3 {
	if from == to {
		return coord.Identity3()
	}
	src := Bradford.MulVector3(from.WhitePoint().Vector3())
	dst := Bradford.MulVector3(to.WhitePoint().Vector3())
	scale := coord.Diagonal3(coord.Vec3(dst.X/src.X, dst.Y/src.Y, dst.Z/src.Z))
	return BradfordInverse.Mul(scale.Mul(Bradford))
}

// Adapt returns the color as it appears under the given illuminant.
// If the illuminant is that of the color, the color is returned unchanged.
func (c XYZ) Adapt(il Illuminant) XYZ {
	if c.Illuminant == il {
		return c
	}
	v := AdaptationMatrix(c.Illuminant, il).MulVector3(c.Vector3())
	return XYZ{v.X, v.Y, v.Z, il}
}
