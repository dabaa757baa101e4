// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"

	"cogentcore.org/colors"
	"cogentcore.org/colors/srgb"
)

// Image returns an [image.Image] of the given size that renders the
// colormap from left (0) to right (1). Colors are clamped into sRGB.
func Image[T colors.Color](m Map[T], width, height int) image.Image {
	return &mapImage[T]{m: m, rect: image.Rect(0, 0, width, height)}
}

// RGBA renders the colormap into a new [image.RGBA] of the given size,
// as drawn by [Image].
func RGBA[T colors.Color](m Map[T], width, height int) *image.RGBA {
	return clone.AsRGBA(Image(m, width, height))
}

type mapImage[T colors.Color] struct {
	m    Map[T]
	rect image.Rectangle
}

func (mi *mapImage[T]) ColorModel() color.Model {
	return color.RGBAModel
}

func (mi *mapImage[T]) Bounds() image.Rectangle {
	return mi.rect
}

// At returns the color at the center of the given pixel column.
func (mi *mapImage[T]) At(x, y int) color.Color {
	w := mi.rect.Dx()
	if w == 0 {
		return color.RGBA{}
	}
	pos := (float64(x-mi.rect.Min.X) + 0.5) / float64(w)
	return colors.Convert[srgb.RGB](mi.m.At(pos)).AsRGBA()
}
