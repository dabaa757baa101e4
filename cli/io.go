// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// includer is a config object that lists other config files to include.
type includer interface {
	IncludesPtr() *[]string
}

// Open reads the given config object from the given file, which is TOML
// or YAML based on its extension (.toml, .yaml or .yml). If cfg has
// Includes, they are opened first, relative to the directory of file,
// in the natural include order so that includers overwrite included
// settings. Include cycles are an error.
func Open(cfg any, file string) error {
	return openWithIncludes(cfg, file, map[string]bool{})
}

func openWithIncludes(cfg any, file string, seen map[string]bool) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return err
	}
	if seen[abs] {
		return fmt.Errorf("cli.Open: include cycle at %q", file)
	}
	seen[abs] = true
	if err := openFile(cfg, file); err != nil {
		return err
	}
	inc, ok := cfg.(includer)
	if !ok {
		return nil
	}
	incs := *inc.IncludesPtr()
	if len(incs) == 0 {
		return nil
	}
	*inc.IncludesPtr() = nil
	for _, f := range incs {
		if err := openWithIncludes(cfg, filepath.Join(filepath.Dir(file), f), seen); err != nil {
			return err
		}
		*inc.IncludesPtr() = nil
	}
	// reopen original
	err = openFile(cfg, file)
	*inc.IncludesPtr() = incs
	return err
}

// openFile decodes a single file into cfg.
func openFile(cfg any, file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		return fmt.Errorf("cli.Open: unsupported config file type %q", file)
	}
	if err != nil {
		return fmt.Errorf("cli.Open: %s: %w", file, err)
	}
	return nil
}
