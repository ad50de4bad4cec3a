// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package config loads licscan configuration archives.
//
// A configuration is a txtar archive that can contain the following files:
//
//   - exclusions.json: a JSON array of path suffixes. Files and directories
//     whose path ends with one of them are not scanned.
//   - templates/{Name}.txt: a license template named Name, one pattern per
//     line. Templates are tried after the built-in ones, in archive order.
//
// Other files are ignored.
package config

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"golang.org/x/tools/txtar"

	"go.astrophena.name/licscan/license"
)

// Config is a parsed configuration archive.
type Config struct {
	Exclusions []string
	Templates  []*license.Template
}

// Load reads and parses the configuration archive at file.
func Load(file string) (*Config, error) {
	ar, err := txtar.ParseFile(file)
	if err != nil {
		return nil, err
	}
	cfg, err := Parse(ar)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return cfg, nil
}

// Parse builds a Config from an archive.
func Parse(ar *txtar.Archive) (*Config, error) {
	cfg := new(Config)
	for _, f := range ar.Files {
		switch {
		case f.Name == "exclusions.json":
			if err := json.Unmarshal(f.Data, &cfg.Exclusions); err != nil {
				return nil, fmt.Errorf("exclusions.json: %w", err)
			}
		case path.Dir(f.Name) == "templates" && path.Ext(f.Name) == ".txt":
			name := strings.TrimSuffix(path.Base(f.Name), ".txt")
			t, err := license.ParseTemplate(name, string(f.Data))
			if err != nil {
				return nil, err
			}
			cfg.Templates = append(cfg.Templates, t)
		}
	}
	return cfg, nil
}

// IsExcluded reports whether path ends with one of the exclusions.
func (c *Config) IsExcluded(path string) bool {
	if c == nil {
		return false
	}
	for _, ex := range c.Exclusions {
		if strings.HasSuffix(path, ex) {
			return true
		}
	}
	return false
}
