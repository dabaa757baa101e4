// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"

	"cogentcore.org/colors/hsl"
	"cogentcore.org/colors/lab"
	"cogentcore.org/colors/srgb"
)

func ExampleConvert() {
	fmt.Println(Convert[lab.Lab](srgb.New(1, 0, 0)))
	fmt.Println(Convert[hsl.HSL](srgb.New(1, 1, 0)))
	// Output:
	// lab(54.29, 80.81, 69.89)
	// hsl(60, 1, 0.5)
}

func ExampleGradientScale() {
	start := srgb.FromUint8(0x11, 0x45, 0x7c)
	end := srgb.FromUint8(0x77, 0x4b, 0xdc)
	fmt.Println(GradientScale(start, end, 5))
	// Output: [#11457C #22468C #33479C #4448AC #5549BC #664ACC #774BDC]
}

func ExampleMix() {
	fmt.Println(Mix(hsl.New(0, 1, 0.5), hsl.New(120, 1, 0.5)))
	// Output: hsl(60, 1, 0.5)
}

func ExampleClamp() {
	fmt.Println(Clamp[srgb.RGB](srgb.New(1.2, 0.5, -0.3)))
	// Output: #FF8000
}
