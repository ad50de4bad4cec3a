// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"iter"
	"strings"
)

// Result is the outcome of matching one candidate against one template.
type Result struct {
	// Complete reports whether every template line was matched.
	Complete bool
	// Fields holds the values captured by the matched lines.
	Fields Fields
}

// Match aligns the leading lines of a candidate against t.
//
// Candidate lines that come before the first matching line are skipped. Once
// a line has matched, every following candidate line must match the next
// template line until the template is exhausted, otherwise the match fails.
// Match stops pulling lines as soon as the outcome is known.
func Match(lines iter.Seq[string], t *Template) Result {
	m := newMatcher(t)
	for line := range lines {
		if !m.feed(line) {
			break
		}
	}
	return m.result()
}

type state int

const (
	notStarted state = iota
	inProgress
	complete
	failed
)

func (s state) String() string {
	switch s {
	case notStarted:
		return "not started"
	case inProgress:
		return "in progress"
	case complete:
		return "complete"
	case failed:
		return "failed"
	}
	return "unknown"
}

// matcher advances through a template one candidate line at a time.
type matcher struct {
	t      *Template
	pos    int // index of the next template line
	state  state
	fields Fields
}

func newMatcher(t *Template) *matcher {
	m := &matcher{t: t, fields: make(Fields)}
	if t.Len() == 0 {
		m.state = complete
	}
	return m
}

// feed tests a single candidate line and reports whether more lines are
// needed.
func (m *matcher) feed(line string) bool {
	if m.done() {
		return false
	}
	line = strings.TrimSpace(line)
	re := m.t.lines[m.pos]
	loc := re.FindStringSubmatchIndex(line)
	if loc == nil {
		if m.state == inProgress {
			m.state = failed
			return false
		}
		return true
	}

	m.state = inProgress
	for i, name := range re.SubexpNames() {
		if name == "" {
			continue
		}
		if start, end := loc[2*i], loc[2*i+1]; start >= 0 {
			m.fields[name] = line[start:end]
		} else {
			delete(m.fields, name)
		}
	}
	m.pos++
	if m.pos == m.t.Len() {
		m.state = complete
		return false
	}
	return true
}

func (m *matcher) done() bool { return m.state == complete || m.state == failed }

func (m *matcher) result() Result {
	return Result{
		Complete: m.state == complete,
		Fields:   m.fields,
	}
}
