// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"cogentcore.org/colors/cie"
)

// Color is implemented by every color representation. A color must be able
// to express itself in the hub representation [cie.XYZ], viewed under any
// illuminant.
type Color interface {

	// ToXYZ returns the color in CIE XYZ as seen under the given illuminant.
	ToXYZ(il cie.Illuminant) cie.XYZ
}

// Space is a [Color] that can also be constructed from [cie.XYZ].
// FromXYZ is called on the zero value of T and must not depend on
// the receiver.
type Space[T any] interface {
	Color

	// FromXYZ returns the T closest to the given XYZ color.
	FromXYZ(xyz cie.XYZ) T
}

// ReferenceIlluminant is the illuminant through which all generic
// conversions pass. It is the native white of CIELAB, which keeps
// the perceptual operations free of adaptation error.
var ReferenceIlluminant = cie.D50

// Convert converts any color into the representation U.
// If c is already a U it is returned unchanged.
func Convert[U Space[U]](c Color) U {
	if u, ok := c.(U); ok {
		return u
	}
	var u U
	return u.FromXYZ(c.ToXYZ(ReferenceIlluminant))
}
