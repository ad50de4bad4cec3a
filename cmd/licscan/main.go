// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.astrophena.name/licscan/cli"
	"go.astrophena.name/licscan/internal/config"
	"go.astrophena.name/licscan/internal/report"
	"go.astrophena.name/licscan/license"
	"go.astrophena.name/licscan/logger"
)

func main() { cli.Main(new(app)) }

type app struct {
	config    string
	format    string
	templates []string
	parallel  int
	maxLines  int
	summary   bool
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.config, "config", "", "Load extra templates and exclusions from txtar `file`.")
	fs.StringVar(&a.format, "format", "text", "Output `format`, one of: "+strings.Join(report.Formats, ", ")+".")
	fs.Func("template", "Only try the template `name`. Can be repeated.", func(name string) error {
		a.templates = append(a.templates, name)
		return nil
	})
	fs.IntVar(&a.parallel, "parallel", 1, "Check up to `n` files concurrently.")
	fs.IntVar(&a.maxLines, "max-lines", 0, "Read at most `n` lines of a file per template (0 means no limit).")
	fs.BoolVar(&a.summary, "summary", false, "Print the number of files per license to stderr.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if len(env.Args) != 1 {
		return fmt.Errorf("%w: usage: licscan [flags] <root>", cli.ErrInvalidArgs)
	}
	if a.parallel < 1 {
		return fmt.Errorf("%w: -parallel must be positive", cli.ErrInvalidArgs)
	}

	reg, cfg, err := a.load(ctx)
	if err != nil {
		return err
	}
	out, err := report.New(a.format, env.Stdout)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrInvalidArgs, err)
	}

	stats := new(license.Stats)
	s := &license.Scanner{
		Finder:   license.Finder{Registry: reg, MaxLines: a.maxLines},
		Exclude:  cfg.IsExcluded,
		Parallel: a.parallel,
		Stats:    stats,
	}

	root := openRoot(env.Args[0])
	for r := range s.Scan(ctx, root.fsys, root.name) {
		r.Path = root.display(r.Path)
		if r.Err != nil {
			logger.Warn(ctx, "cannot check file", slog.String("path", r.Path), slog.Any("err", r.Err))
		}
		if err := out.Add(r); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := out.Flush(ctx); err != nil {
		return err
	}

	if a.summary {
		for _, name := range reg.Names() {
			if n := stats.Count(name); n > 0 {
				env.Logf("%s: %d", name, n)
			}
		}
		env.Logf("%s: %d", report.NoLicense, stats.Count(""))
	}
	return nil
}

// load builds the template registry and reads the configuration, if any.
func (a *app) load(ctx context.Context) (*license.Registry, *config.Config, error) {
	reg := license.Builtin()

	var cfg *config.Config
	if a.config != "" {
		var err error
		cfg, err = config.Load(a.config)
		if err != nil {
			return nil, nil, fmt.Errorf("loading configuration: %w", err)
		}
		reg, err = reg.With(cfg.Templates...)
		if err != nil {
			return nil, nil, fmt.Errorf("loading configuration: %w", err)
		}
	}

	if len(a.templates) > 0 {
		selected, err := reg.Select(a.templates...)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", cli.ErrInvalidArgs, err)
		}
		reg = selected
	}

	for t := range reg.All() {
		logger.Debug(ctx, "template loaded",
			slog.String("name", t.Name),
			slog.Int("lines", t.Len()),
			slog.Any("fields", t.Fields()),
		)
	}
	return reg, cfg, nil
}

// scanRoot is the root argument opened for walking.
type scanRoot struct {
	arg  string // as given on the command line
	fsys fs.FS
	name string // path of the root within fsys
	dir  bool
}

func openRoot(arg string) scanRoot {
	if fi, err := os.Stat(arg); err == nil && fi.IsDir() {
		return scanRoot{arg: arg, fsys: os.DirFS(arg), name: ".", dir: true}
	}
	return scanRoot{arg: arg, fsys: os.DirFS(filepath.Dir(arg)), name: filepath.Base(arg)}
}

// display turns a walked path into the path printed to the user. The root
// is kept as spelled on the command line, so "./src" gives "./src/a.c".
func (r scanRoot) display(p string) string {
	if !r.dir || p == "." {
		return r.arg
	}
	rel := filepath.FromSlash(p)
	if strings.HasSuffix(r.arg, string(filepath.Separator)) {
		return r.arg + rel
	}
	return r.arg + string(filepath.Separator) + rel
}
