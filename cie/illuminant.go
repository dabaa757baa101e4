// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the CIE XYZ hub color representation, standard
// illuminants, Bradford chromatic adaptation, and the CIE formulas
// (LAB, LUV, sRGB companding, CIEDE2000, spectral locus) built on it.
package cie

import "fmt"

// Illuminant is a viewing illuminant, identified by its reference white.
// Illuminants are compared by value.
type Illuminant struct {
	name  string
	white [3]float64
}

// The standard illuminants, with CIE 1931 2° white points from ASTM E308,
// normalized so that Y = 1.
var (
	// A is incandescent (tungsten) light.
	A = Illuminant{"A", [3]float64{1.09850, 1, 0.35585}}

	// C is average daylight, now deprecated in favor of D65.
	C = Illuminant{"C", [3]float64{0.98074, 1, 1.18232}}

	// D50 is horizon light, the ICC profile connection space white.
	D50 = Illuminant{"D50", [3]float64{0.96422, 1, 0.82521}}

	// D55 is mid-morning or mid-afternoon daylight.
	D55 = Illuminant{"D55", [3]float64{0.95682, 1, 0.92129}}

	// D65 is noon daylight, the white of sRGB and Adobe RGB.
	D65 = Illuminant{"D65", [3]float64{0.95047, 1, 1.08884}}

	// D75 is north sky daylight.
	D75 = Illuminant{"D75", [3]float64{0.94972, 1, 1.22638}}

	// E is the equal energy illuminant.
	E = Illuminant{"E", [3]float64{1, 1, 1}}

	// F2 is cool white fluorescent light.
	F2 = Illuminant{"F2", [3]float64{0.99187, 1, 0.67395}}

	// F7 is broadband daylight fluorescent light.
	F7 = Illuminant{"F7", [3]float64{0.95044, 1, 1.08755}}

	// F11 is narrowband white fluorescent light.
	F11 = Illuminant{"F11", [3]float64{1.00966, 1, 0.64370}}
)

// Illuminants is the list of all standard illuminants.
var Illuminants = []Illuminant{A, C, D50, D55, D65, D75, E, F2, F7, F11}

// Custom returns a custom illuminant with the given white point.
// The white point is normalized so that its Y component is 1.
func Custom(x, y, z float64) Illuminant {
	return Illuminant{white: [3]float64{x / y, 1, z / y}}
}

// IlluminantFromName returns the standard illuminant with the given name
// (such as "D65"), and false if there is no such illuminant.
func IlluminantFromName(name string) (Illuminant, bool) {
	for _, il := range Illuminants {
		if il.name == name {
			return il, true
		}
	}
	return Illuminant{}, false
}

// WhitePoint returns the reference white of the illuminant, with Y = 1.
func (il Illuminant) WhitePoint() XYZ {
	return XYZ{il.white[0], il.white[1], il.white[2], il}
}

// IsCustom returns whether the illuminant was made with [Custom].
func (il Illuminant) IsCustom() bool {
	return il.name == ""
}

// String returns the name of a standard illuminant, or a
// description of the white point of a custom one.
func (il Illuminant) String() string {
	if il.name != "" {
		return il.name
	}
	return fmt.Sprintf("Custom(%g, %g, %g)", il.white[0], il.white[1], il.white[2])
}
