// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lab

import (
	"fmt"
	"math"

	"cogentcore.org/colors/cie"
	"cogentcore.org/colors/coord"
)

// LCh is a color in the cylindrical form of CIE L*a*b*.
// L is the same lightness as [Lab], C is the chroma and
// H is the hue angle in degrees, from 0-360.
type LCh struct {
	L float64
	C float64
	H float64
}

// NewLCh returns a new [LCh] color with the given components.
func NewLCh(l, c, h float64) LCh {
	return LCh{l, c, h}
}

// Lab returns the color in opponent axis form.
func (c LCh) Lab() Lab {
	s, co := math.Sincos(c.H * math.Pi / 180)
	return Lab{c.L, c.C * co, c.C * s}
}

// ToXYZ returns the color in XYZ viewed under the given illuminant.
func (c LCh) ToXYZ(il cie.Illuminant) cie.XYZ {
	return c.Lab().ToXYZ(il)
}

// FromXYZ returns the [LCh] color for the given XYZ color.
// The hue of a neutral color is 0.
func (LCh) FromXYZ(xyz cie.XYZ) LCh {
	return Lab{}.FromXYZ(xyz).LCh()
}

// Coord returns L, C, H as a [coord.Vector3].
func (c LCh) Coord() coord.Vector3 {
	return coord.Vec3(c.L, c.C, c.H)
}

// FromCoord returns the color with L, C, H from the given [coord.Vector3].
func (LCh) FromCoord(v coord.Vector3) LCh {
	return LCh{v.X, v.Y, v.Z}
}

// String returns a string representation of the color.
func (c LCh) String() string {
	return fmt.Sprintf("lch(%.4g, %.4g, %.4g)", c.L, c.C, c.H)
}
