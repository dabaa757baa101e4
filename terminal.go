// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"github.com/muesli/termenv"

	"cogentcore.org/colors/srgb"
)

// Profile is the terminal color profile used by [Foreground],
// [Background] and [Swatch]. Colors are downsampled to it, and
// with [termenv.Ascii] no escape sequences are written.
var Profile = termenv.TrueColor

// termColor returns the terminal color for c, after clamping into sRGB.
func termColor(c Color) termenv.Color {
	return Profile.Color(Clamp[srgb.RGB](Convert[srgb.RGB](c)).Hex())
}

// Foreground returns the text styled with c as its foreground color.
func Foreground(c Color, text string) string {
	return Profile.String(text).Foreground(termColor(c)).String()
}

// Background returns the text styled with c as its background color.
func Background(c Color, text string) string {
	return Profile.String(text).Background(termColor(c)).String()
}

// Swatch returns a small block of the color that can be printed
// to a terminal.
func Swatch(c Color) string {
	return Background(c, "    ")
}
