// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"golang.org/x/tools/txtar"

	"go.astrophena.name/licscan/cli"
	"go.astrophena.name/licscan/internal/config"
	"go.astrophena.name/licscan/license"
	"go.astrophena.name/licscan/logger"
)

const configFile = ".devtools/config.txtar"

type settings struct {
	exclusions config.Config
	templates  map[string]string // by extension
}

func parseConfig(file string) (*settings, error) {
	s := &settings{templates: make(map[string]string)}

	ar, err := txtar.ParseFile(file)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s not found, run from the repository root", file)
	}
	if err != nil {
		return nil, err
	}

	for _, f := range ar.Files {
		name, ok := strings.CutPrefix(f.Name, "copyright/")
		if !ok {
			continue
		}
		switch {
		case name == "exclusions.json":
			if err := json.Unmarshal(f.Data, &s.exclusions.Exclusions); err != nil {
				return nil, fmt.Errorf("%s: %w", f.Name, err)
			}
		case strings.HasPrefix(name, "template."):
			s.templates[path.Ext(name)] = string(f.Data)
		}
	}

	return s, nil
}

func main() { cli.Main(new(app)) }

type app struct {
	dry bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.dry, "dry", false, "Print the files that would have a copyright header added, without making changes.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	cfg, err := parseConfig(configFile)
	if err != nil {
		return err
	}

	s := &license.Scanner{Exclude: cfg.exclusions.IsExcluded}
	for r := range s.Scan(ctx, os.DirFS("."), ".") {
		if r.Err != nil {
			return r.Err
		}
		if r.License != "" {
			continue
		}
		tmpl, ok := cfg.templates[path.Ext(r.Path)]
		if !ok {
			continue
		}
		if err := a.addHeader(ctx, env, r.Path, tmpl); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func (a *app) addHeader(ctx context.Context, env *cli.Env, name, tmpl string) error {
	info, err := os.Stat(name)
	if err != nil {
		return err
	}
	content, err := os.ReadFile(name)
	if err != nil {
		return err
	}

	hdr := fmt.Sprintf(tmpl, info.ModTime().Year())
	if a.dry {
		env.Logf("Would add copyright header to file %s:\n%s", name, hdr)
		return nil
	}
	if err := os.WriteFile(name, append([]byte(hdr), content...), info.Mode().Perm()); err != nil {
		return err
	}
	logger.Info(ctx, "added copyright header", slog.String("path", name))
	return nil
}
