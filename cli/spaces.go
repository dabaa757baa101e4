// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"image"
	"slices"
	"strings"

	"cogentcore.org/colors"
	"cogentcore.org/colors/adobergb"
	"cogentcore.org/colors/colormap"
	"cogentcore.org/colors/hsl"
	"cogentcore.org/colors/hsv"
	"cogentcore.org/colors/lab"
	"cogentcore.org/colors/luv"
	"cogentcore.org/colors/rommrgb"
	"cogentcore.org/colors/srgb"
)

// namedColor is a color that can be printed.
type namedColor interface {
	colors.Color
	fmt.Stringer
}

// space is a color space selectable on the command line.
type space struct {
	convert  func(c colors.Color) namedColor
	gradient func(a, b colors.Color, xs []float64, cbrt bool) []namedColor
	render   func(a, b colors.Color, cbrt bool, width, height int) *image.RGBA
}

func newSpace[T interface {
	colors.Point[T]
	fmt.Stringer
}]() space {
	gradient := func(a, b colors.Color, cbrt bool) *colormap.Gradient[T] {
		ta, tb := colors.Convert[T](a), colors.Convert[T](b)
		if cbrt {
			return colormap.NewCbrt(ta, tb)
		}
		return colormap.NewLinear(ta, tb)
	}
	return space{
		convert: func(c colors.Color) namedColor {
			return colors.Convert[T](c)
		},
		gradient: func(a, b colors.Color, xs []float64, cbrt bool) []namedColor {
			cs := colormap.Transform[T](gradient(a, b, cbrt), xs)
			ncs := make([]namedColor, len(cs))
			for i, c := range cs {
				ncs[i] = c
			}
			return ncs
		},
		render: func(a, b colors.Color, cbrt bool, width, height int) *image.RGBA {
			return colormap.RGBA[T](gradient(a, b, cbrt), width, height)
		},
	}
}

// spaces are the color spaces selectable with the space option.
var spaces = map[string]space{
	"srgb":     newSpace[srgb.RGB](),
	"lab":      newSpace[lab.Lab](),
	"lch":      newSpace[lab.LCh](),
	"luv":      newSpace[luv.Luv](),
	"lchuv":    newSpace[luv.LCh](),
	"hsl":      newSpace[hsl.HSL](),
	"hsv":      newSpace[hsv.HSV](),
	"adobergb": newSpace[adobergb.RGB](),
	"rommrgb":  newSpace[rommrgb.RGB](),
}

// spaceNames returns the sorted names of [spaces].
func spaceNames() []string {
	names := make([]string, 0, len(spaces))
	for name := range spaces {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// lookupSpace returns the space with the given name, ignoring case.
func lookupSpace(name string) (space, error) {
	sp, ok := spaces[strings.ToLower(name)]
	if !ok {
		return space{}, fmt.Errorf("unknown color space %q; must be one of %s", name, strings.Join(spaceNames(), ", "))
	}
	return sp, nil
}
