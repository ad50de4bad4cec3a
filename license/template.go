// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"bufio"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Names of the fields captured by the built-in templates.
const (
	FieldDate    = "date"
	FieldGrantor = "grantor"
	FieldBrand   = "brand"
)

// ErrEmptyTemplate is returned by [ParseTemplate] for a template without lines.
var ErrEmptyTemplate = errors.New("template has no lines")

// Template is a named license text split into line patterns.
//
// Each line is a regular expression that must match at the start of a single
// candidate line. Named groups, written as (?P<name>...), capture attribution
// fields such as [FieldDate].
type Template struct {
	// Name identifies the license, for example "BSD".
	Name string

	lines []*regexp.Regexp
}

// ParseTemplate compiles text into a Template. Every line of text becomes one
// pattern, with trailing whitespace removed. An empty line matches anything.
func ParseTemplate(name, text string) (*Template, error) {
	t := &Template{Name: name}
	s := bufio.NewScanner(strings.NewReader(text))
	for n := 1; s.Scan(); n++ {
		line := strings.TrimRightFunc(s.Text(), unicode.IsSpace)
		// The line must be a valid expression by itself so that it can't
		// break out of the anchored group.
		if _, err := regexp.Compile(line); err != nil {
			return nil, fmt.Errorf("template %s, line %d: %w", name, n, err)
		}
		re, err := regexp.Compile(`^(?:` + line + `)`)
		if err != nil {
			return nil, fmt.Errorf("template %s, line %d: %w", name, n, err)
		}
		t.lines = append(t.lines, re)
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}
	if len(t.lines) == 0 {
		return nil, fmt.Errorf("template %s: %w", name, ErrEmptyTemplate)
	}
	return t, nil
}

// MustParseTemplate is like [ParseTemplate] but panics on error.
func MustParseTemplate(name, text string) *Template {
	t, err := ParseTemplate(name, text)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of lines in t.
func (t *Template) Len() int { return len(t.lines) }

// Fields returns the names of the fields t can capture, in order of first
// appearance.
func (t *Template) Fields() []string {
	var names []string
	seen := make(map[string]bool)
	for _, re := range t.lines {
		for _, name := range re.SubexpNames() {
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}

// Fields maps field names to captured values. A field that was never captured
// is absent.
type Fields map[string]string

// Date returns the captured copyright date, which may be a year range.
func (f Fields) Date() string { return f[FieldDate] }

// Grantor returns the captured copyright holder.
func (f Fields) Grantor() string { return f[FieldGrantor] }

// Brand returns the captured organization or project name.
func (f Fields) Brand() string { return f[FieldBrand] }
