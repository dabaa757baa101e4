// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"cogentcore.org/colors/base/errors"
	"cogentcore.org/colors/hsl"
	"cogentcore.org/colors/lab"
	"cogentcore.org/colors/srgb"
)

// FromName returns the sRGB color specified by the given CSS standard
// color name. It returns an error if the name is not found; see
// [MustFromName] for a version that panics instead.
func FromName(name string) (srgb.RGB, error) {
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return srgb.RGB{}, errors.New("colors.FromName: name not found: " + name)
	}
	return srgb.FromColor(c), nil
}

// MustFromName is like [FromName], but it panics if the name is not found.
func MustFromName(name string) srgb.RGB {
	return errors.Must1(FromName(name))
}

// FromString returns a color value from the given string.
// FromString accepts the following types of strings: hex values,
// standard color names, rgb(r, g, b) with 0-255 components,
// hsl(h, s, l) with percentage saturation and lightness, or
// any of the following transformations of base:
//   - inverse = inverse of base color in sRGB
//   - lighten-PCT or darken-PCT: changes the CIELAB lightness by PCT, e.g., 10 = 10 units
//   - saturate-PCT or desaturate-PCT: scales the CIELCh chroma up or down by PCT percent
//   - blend-PCT-color: mixes PCT percent of the given color into base, in CIELAB
func FromString(str string, base srgb.RGB) (srgb.RGB, error) {
	lstr := strings.ToLower(strings.TrimSpace(str))
	switch {
	case lstr == "":
		return srgb.RGB{}, errors.New("colors.FromString: empty string")
	case lstr[0] == '#':
		return srgb.FromHex(lstr)
	case lstr == "inverse":
		return srgb.New(1-base.R, 1-base.G, 1-base.B), nil
	case strings.HasPrefix(lstr, "rgb("):
		var r, g, b float64
		if _, err := fmt.Sscanf(trimArgs(lstr[4:]), "%g,%g,%g", &r, &g, &b); err != nil {
			return srgb.RGB{}, fmt.Errorf("colors.FromString: invalid rgb value %q: %w", str, err)
		}
		return srgb.New(r/255, g/255, b/255), nil
	case strings.HasPrefix(lstr, "hsl("):
		var h, s, l float64
		if _, err := fmt.Sscanf(trimArgs(lstr[4:]), "%g,%g,%g", &h, &s, &l); err != nil {
			return srgb.RGB{}, fmt.Errorf("colors.FromString: invalid hsl value %q: %w", str, err)
		}
		return hsl.New(h, s/100, l/100).RGB(), nil
	}
	if c, err := FromName(lstr); err == nil {
		return c, nil
	}
	hidx := strings.Index(lstr, "-")
	if hidx <= 0 {
		return srgb.RGB{}, fmt.Errorf("colors.FromString: unknown color %q", str)
	}
	cmd, pctstr := lstr[:hidx], lstr[hidx+1:]
	var other string
	if cmd == "blend" {
		cidx := strings.Index(pctstr, "-")
		if cidx < 0 {
			return srgb.RGB{}, fmt.Errorf("colors.FromString: blend color not found; format is blend-PCT-color, got %q", str)
		}
		pctstr, other = pctstr[:cidx], pctstr[cidx+1:]
	}
	pct, err := strconv.ParseFloat(pctstr, 64)
	if err != nil {
		return srgb.RGB{}, fmt.Errorf("colors.FromString: error getting percent from %q: %w", pctstr, err)
	}
	switch cmd {
	case "lighten":
		return SetLightness(base, Lightness(base)+pct), nil
	case "darken":
		return SetLightness(base, Lightness(base)-pct), nil
	case "saturate":
		return SetChroma(base, Chroma(base)*(1+pct/100)), nil
	case "desaturate":
		return SetChroma(base, Chroma(base)*(1-pct/100)), nil
	case "blend":
		oc, err := FromString(other, base)
		if err != nil {
			return srgb.RGB{}, err
		}
		l := WeightedMidpoint(Convert[lab.Lab](oc), Convert[lab.Lab](base), pct/100)
		return Convert[srgb.RGB](l), nil
	}
	return srgb.RGB{}, fmt.Errorf("colors.FromString: unknown transformation %q", cmd)
}

// trimArgs removes the closing parenthesis and all spaces and percent
// signs from function style color arguments.
func trimArgs(s string) string {
	s = strings.TrimSuffix(s, ")")
	return strings.NewReplacer(" ", "", "%", "").Replace(s)
}
