// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package colors provides a device independent color model. Every color
representation (for example [srgb.RGB], [lab.Lab] and [hsl.HSL]) converts to
and from the CIE XYZ hub in package cie, so any representation can be turned
into any other with [Convert].

On top of the conversions the package provides perceptual operations
(hue, lightness, chroma and saturation getters and setters, CIEDE2000
[Distance]), gamut clamping for bounded spaces ([Clamp]), geometric
operations for spaces with a 3D embedding ([Mix], [Gradient],
[WeightedAverage]), detection of imaginary colors outside of human vision
([IsImaginary], [ClosestRealColor]) and terminal rendering ([Swatch]).

	red := srgb.New(1, 0, 0)
	l := colors.Convert[lab.Lab](red)
	fmt.Println(l, colors.Distance(red, srgb.New(0.9, 0, 0)))

Colormaps built from these operations are in package colormap.
*/
package colors
