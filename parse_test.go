// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"cogentcore.org/colors/base/tolassert"
	"cogentcore.org/colors/srgb"
	"github.com/stretchr/testify/assert"
)

func TestFromName(t *testing.T) {
	c, err := FromName("red")
	assert.NoError(t, err)
	assert.Equal(t, "#FF0000", c.Hex())
	assert.Equal(t, "#6495ED", MustFromName("CornflowerBlue").Hex())

	_, err = FromName("notacolor")
	assert.Error(t, err)
	assert.Panics(t, func() { MustFromName("notacolor") })
}

func TestFromString(t *testing.T) {
	red := srgb.New(1, 0, 0)
	tests := []struct {
		str  string
		want string
	}{
		{"#ff0080", "#FF0080"},
		{"#F08", "#FF0088"},
		{"rgb(255, 0, 128)", "#FF0080"},
		{"RGB(17,69,124)", "#11457C"},
		{"hsl(0, 100%, 50%)", "#FF0000"},
		{"hsl(240, 100%, 50%)", "#0000FF"},
		{"navy", "#000080"},
		{" white ", "#FFFFFF"},
		{"inverse", "#00FFFF"},
	}
	for _, test := range tests {
		c, err := FromString(test.str, red)
		assert.NoError(t, err, test.str)
		assert.Equal(t, test.want, c.Hex(), test.str)
	}

	for _, str := range []string{"", "notacolor", "lighten-x", "blend-50", "spin-10", "rgb(1)", "#12345"} {
		_, err := FromString(str, red)
		assert.Error(t, err, str)
	}
}

func TestFromStringTransform(t *testing.T) {
	gray := srgb.New(0.5, 0.5, 0.5)

	c, err := FromString("lighten-10", gray)
	assert.NoError(t, err)
	tolassert.EqualTol(t, Lightness(gray)+10, Lightness(c), 1e-8)

	c, err = FromString("darken-20", gray)
	assert.NoError(t, err)
	tolassert.EqualTol(t, Lightness(gray)-20, Lightness(c), 1e-8)

	base := srgb.New(0.6, 0.4, 0.3)
	c, err = FromString("saturate-50", base)
	assert.NoError(t, err)
	tolassert.EqualTol(t, 1.5*Chroma(base), Chroma(c), 1e-8)

	c, err = FromString("desaturate-100", base)
	assert.NoError(t, err)
	tolassert.EqualTol(t, 0, Chroma(c), 1e-8)

	c, err = FromString("blend-0-blue", base)
	assert.NoError(t, err)
	tolassert.EqualTol(t, 0, Distance(base, c), 1e-8)

	c, err = FromString("blend-100-#0000ff", base)
	assert.NoError(t, err)
	tolassert.EqualTol(t, 0, Distance(srgb.New(0, 0, 1), c), 1e-6)
}
