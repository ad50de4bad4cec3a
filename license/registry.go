// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"embed"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"go.astrophena.name/licscan/syncx"
)

// ErrUnknownTemplate is returned when a template name is not registered.
var ErrUnknownTemplate = errors.New("unknown template")

// Registry is an ordered, immutable set of templates.
type Registry struct {
	templates []*Template
}

// NewRegistry returns a Registry holding ts in the given order. Template
// names must be unique.
func NewRegistry(ts ...*Template) (*Registry, error) {
	seen := make(map[string]bool, len(ts))
	for _, t := range ts {
		if seen[t.Name] {
			return nil, fmt.Errorf("duplicate template %q", t.Name)
		}
		seen[t.Name] = true
	}
	return &Registry{templates: slices.Clone(ts)}, nil
}

// Lookup returns the template registered under name.
func (r *Registry) Lookup(name string) (*Template, bool) {
	for _, t := range r.templates {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// All iterates over templates in insertion order.
func (r *Registry) All() iter.Seq[*Template] {
	return slices.Values(r.templates)
}

// Len returns the number of registered templates.
func (r *Registry) Len() int { return len(r.templates) }

// Names returns the template names in insertion order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.templates))
	for _, t := range r.templates {
		names = append(names, t.Name)
	}
	return names
}

// With returns a new Registry with ts appended after the templates of r.
func (r *Registry) With(ts ...*Template) (*Registry, error) {
	return NewRegistry(append(slices.Clone(r.templates), ts...)...)
}

// Select returns a new Registry containing only the named templates, in the
// order they are named.
func (r *Registry) Select(names ...string) (*Registry, error) {
	ts := make([]*Template, 0, len(names))
	for _, name := range names {
		t, ok := r.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
		}
		ts = append(ts, t)
	}
	return NewRegistry(ts...)
}

//go:embed templates/*.txt
var templateFS embed.FS

// Order of the built-in templates. Files are named after the lowercase
// template name.
var builtinNames = []string{"BSD", "BSD-Go", "ISC"}

var builtin syncx.Lazy[*Registry]

// Builtin returns the registry of templates shipped with the package.
func Builtin() *Registry {
	return builtin.Get(func() *Registry {
		ts := make([]*Template, 0, len(builtinNames))
		for _, name := range builtinNames {
			b, err := templateFS.ReadFile("templates/" + strings.ToLower(name) + ".txt")
			if err != nil {
				panic(err)
			}
			ts = append(ts, MustParseTemplate(name, string(b)))
		}
		r, err := NewRegistry(ts...)
		if err != nil {
			panic(err)
		}
		return r
	})
}
