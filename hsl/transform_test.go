// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hsl

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func TestLighten(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 102, 102, 255}, Lighten(red, 20))
	assert.Equal(t, color.RGBA{153, 0, 0, 255}, Darken(red, 20))
	assert.Equal(t, black, Darken(red, 80))
	assert.Equal(t, white, Lighten(red, 200))
}

func TestHighlight(t *testing.T) {
	assert.Equal(t, color.RGBA{204, 204, 204, 255}, Highlight(white, 20))
	assert.Equal(t, color.RGBA{51, 51, 51, 255}, Highlight(black, 20))
	assert.Equal(t, white, Samelight(white, 20))
	assert.Equal(t, black, Samelight(black, 20))
}

func TestSaturate(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 1, 1, 255}, Saturate(color.RGBA{128, 128, 128, 255}, 100))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, Desaturate(red, 100))
	assert.Equal(t, red, Saturate(red, 50))
}

func TestSpin(t *testing.T) {
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, Spin(red, 120))
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, Spin(red, -120))
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, Spin(red, 480))
}

func TestContrast(t *testing.T) {
	assert.True(t, IsLight(white))
	assert.False(t, IsDark(white))
	assert.True(t, IsDark(color.RGBA{0, 0, 128, 255}))
	assert.Equal(t, black, ContrastColor(white))
	assert.Equal(t, white, ContrastColor(color.RGBA{0, 0, 128, 255}))
}
