// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"iter"
)

// maxLineSize is the longest candidate line that is read. A longer line ends
// the candidate, which in practice means the file is not text.
const maxLineSize = 1 << 20

// Detection is the license found in a file.
type Detection struct {
	// License is the name of the matching template, or empty if none matched.
	License string
	// Fields holds the fields captured by the matching template.
	Fields Fields
}

// Found reports whether a license was detected.
func (d Detection) Found() bool { return d.License != "" }

// Finder looks for the first template of a registry that matches a file.
type Finder struct {
	// Registry holds the templates to try. If nil, Builtin is used.
	Registry *Registry
	// MaxLines limits how many lines of a file are read per template.
	// Zero means no limit.
	MaxLines int
}

func (f *Finder) registry() *Registry {
	if f.Registry == nil {
		return Builtin()
	}
	return f.Registry
}

// Find opens name in fsys and tries every template in registry order. It
// returns the first complete match, or a zero Detection if none matched.
func (f *Finder) Find(fsys fs.FS, name string) (Detection, error) {
	for t := range f.registry().All() {
		res, err := f.matchFile(fsys, name, t)
		if err != nil {
			return Detection{}, err
		}
		if res.Complete {
			return Detection{License: t.Name, Fields: res.Fields}, nil
		}
	}
	return Detection{}, nil
}

func (f *Finder) matchFile(fsys fs.FS, name string, t *Template) (Result, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return Result{}, err
	}
	defer file.Close()

	return matchReader(file, t, f.MaxLines)
}

// MatchReader matches the lines read from r against t.
func MatchReader(r io.Reader, t *Template) (Result, error) {
	return matchReader(r, t, 0)
}

func matchReader(r io.Reader, t *Template, maxLines int) (Result, error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineSize)
	res := Match(take(scanLines(s), maxLines), t)
	if err := s.Err(); err != nil && !errors.Is(err, bufio.ErrTooLong) {
		return Result{}, err
	}
	return res, nil
}

func scanLines(s *bufio.Scanner) iter.Seq[string] {
	return func(yield func(string) bool) {
		for s.Scan() {
			if !yield(s.Text()) {
				return
			}
		}
	}
}

// take limits seq to its first n elements. A non-positive n means no limit.
func take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	if n <= 0 {
		return seq
	}
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}
