// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli implements the colors command line tool: color conversion,
// distances, gradients and illuminant listings, configured through
// flags and TOML or YAML config files.
package cli

import (
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/colors/base/errors"
)

// Config is the configuration of the colors tool. Values come from the
// `default:` struct tags, then from any config file, then from flags.
type Config struct {

	// Includes are other config files to read before this one,
	// relative to its directory. Settings in this file override them.
	Includes []string `toml:"includes" yaml:"includes"`

	// Space is the color space used for output.
	Space string `toml:"space" yaml:"space" default:"srgb"`

	// Illuminant is the name of the illuminant under which XYZ values are shown.
	Illuminant string `toml:"illuminant" yaml:"illuminant" default:"D50"`

	// Steps is the number of intermediate colors in a gradient.
	Steps int `toml:"steps" yaml:"steps" default:"5"`

	// Cbrt uses cube root instead of linear gradient normalization.
	Cbrt bool `toml:"cbrt" yaml:"cbrt"`

	// Swatch prints a terminal color swatch next to each color.
	Swatch bool `toml:"swatch" yaml:"swatch" default:"true"`

	// PNG is a file to save a rendering of a gradient to.
	PNG string `toml:"png" yaml:"png"`

	// Width and Height are the size of the PNG rendering.
	Width  int `toml:"width" yaml:"width" default:"256"`
	Height int `toml:"height" yaml:"height" default:"32"`

	// VeryVerbose, Verbose and Quiet set the log level.
	VeryVerbose bool `toml:"vv" yaml:"vv"`
	Verbose     bool `toml:"v" yaml:"v"`
	Quiet       bool `toml:"q" yaml:"q"`
}

// IncludesPtr returns a pointer to the Includes field, for [Open].
func (c *Config) IncludesPtr() *[]string {
	return &c.Includes
}

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(setFromDefaultTags(cfg))
}

// setFromDefaultTags sets each field of the struct pointed to by cfg
// that has a `default:` tag, for string, bool, int and float fields.
func setFromDefaultTags(cfg any) error {
	v := reflect.ValueOf(cfg)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("cli.SetFromDefaults: expected a pointer to a struct, got %T", cfg)
	}
	v = v.Elem()
	typ := v.Type()
	var errs []error
	for i := range typ.NumField() {
		f := typ.Field(i)
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		fv := v.Field(i)
		var err error
		switch fv.Kind() {
		case reflect.String:
			fv.SetString(def)
		case reflect.Bool:
			var b bool
			b, err = strconv.ParseBool(def)
			fv.SetBool(b)
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			var n int64
			n, err = strconv.ParseInt(def, 10, 64)
			fv.SetInt(n)
		case reflect.Float32, reflect.Float64:
			var x float64
			x, err = strconv.ParseFloat(def, 64)
			fv.SetFloat(x)
		default:
			err = fmt.Errorf("unsupported kind %v", fv.Kind())
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("cli.SetFromDefaults: field %s: %w", f.Name, err))
		}
	}
	return errors.Join(errs...)
}
