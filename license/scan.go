// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"log/slog"
	"sync/atomic"

	"github.com/go4org/hashtriemap"

	"go.astrophena.name/licscan/logger"
	"go.astrophena.name/licscan/syncx"
)

// Report describes the license detected in a single file.
type Report struct {
	// Path is the slash-separated path of the file within the scanned FS.
	Path string
	// License is the name of the matching template, or empty if none matched.
	License string
	// Fields holds the fields captured by the matching template.
	Fields Fields
	// Lines and CodeLines are the total number of lines and the number of
	// lines with code, as counted by [CountLines].
	Lines     int
	CodeLines int
	// Err is set if the file could not be read.
	Err error
}

// Scanner walks a file tree and detects licenses of regular files.
type Scanner struct {
	Finder Finder
	// Exclude, if set, is called with each path. Excluded directories are not
	// descended into.
	Exclude func(path string) bool
	// Parallel is the number of files matched concurrently. Values below 2
	// mean sequential matching. Reports are yielded in walk order either way.
	Parallel int
	// Stats, if set, counts reports per license.
	Stats *Stats
}

var errStop = errors.New("stop walking")

// Scan walks fsys starting at root and yields a Report for every regular
// file, in lexical walk order. Unreadable files and directories produce a
// Report with Err set; the walk continues past them.
//
// The walk stops when ctx is done or the consumer stops iterating.
func (s *Scanner) Scan(ctx context.Context, fsys fs.FS, root string) iter.Seq[Report] {
	return func(yield func(Report) bool) {
		if s.Parallel > 1 {
			s.scanParallel(ctx, fsys, root, yield)
			return
		}
		s.walk(ctx, fsys, root, func(path string, err error) bool {
			if err != nil {
				return yield(s.failed(path, err))
			}
			return yield(s.report(ctx, fsys, path))
		})
	}
}

func (s *Scanner) scanParallel(ctx context.Context, fsys fs.FS, root string, yield func(Report) bool) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		pending = make(chan chan Report, s.Parallel)
		workers = syncx.NewLimitedWaitGroup(s.Parallel)
	)
	go func() {
		defer close(pending)
		s.walk(ctx, fsys, root, func(path string, err error) bool {
			ch := make(chan Report, 1)
			select {
			case pending <- ch:
			case <-ctx.Done():
				return false
			}
			if err != nil {
				ch <- s.failed(path, err)
				return true
			}
			workers.Go(func() { ch <- s.report(ctx, fsys, path) })
			return true
		})
	}()

	for ch := range pending {
		if ctx.Err() != nil || !yield(<-ch) {
			break
		}
	}
	cancel()
	for range pending {
	}
	workers.Wait()
}

// walk calls fn for every regular file under root, or with a non-nil error
// for paths that could not be read. It stops when fn returns false.
func (s *Scanner) walk(ctx context.Context, fsys fs.FS, root string, fn func(path string, err error) bool) {
	fs.WalkDir(fsys, root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return errStop
		}
		if err != nil {
			if !fn(path, err) {
				return errStop
			}
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path != root && s.Exclude != nil && s.Exclude(path) {
			logger.Debug(ctx, "excluded", slog.String("path", path))
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !fn(path, nil) {
			return errStop
		}
		return nil
	})
}

func (s *Scanner) report(ctx context.Context, fsys fs.FS, path string) Report {
	d, err := s.Finder.Find(fsys, path)
	if err != nil {
		return s.failed(path, err)
	}
	if d.Found() {
		logger.Debug(ctx, "license detected", slog.String("path", path), slog.String("license", d.License))
	}
	n, err := countFile(fsys, path)
	if err != nil {
		return s.failed(path, err)
	}
	s.Stats.add(d.License)
	return Report{
		Path:      path,
		License:   d.License,
		Fields:    d.Fields,
		Lines:     n.Lines,
		CodeLines: n.Code,
	}
}

func countFile(fsys fs.FS, name string) (LineCount, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return LineCount{}, err
	}
	defer f.Close()
	return CountLines(f, name)
}

func (s *Scanner) failed(path string, err error) Report {
	s.Stats.add("")
	return Report{Path: path, Err: err}
}

// Stats counts detected licenses. It is safe for concurrent use. The zero
// value is ready to use.
type Stats struct {
	counts hashtriemap.HashTrieMap[string, *atomic.Int64]
}

func (s *Stats) add(license string) {
	if s == nil {
		return
	}
	n, _ := s.counts.LoadOrStore(license, new(atomic.Int64))
	n.Add(1)
}

// Count returns the number of files where license was detected. The empty
// name counts files without a recognized license.
func (s *Stats) Count(license string) int64 {
	n, ok := s.counts.Load(license)
	if !ok {
		return 0
	}
	return n.Load()
}

// Counts returns a snapshot of all counts keyed by license name.
func (s *Stats) Counts() map[string]int64 {
	m := make(map[string]int64)
	s.counts.Range(func(license string, n *atomic.Int64) bool {
		m[license] = n.Load()
		return true
	})
	return m
}
