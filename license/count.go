// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"bufio"
	"errors"
	"io"
	"path"
	"strings"
)

// LineCount holds the size of a file in lines.
type LineCount struct {
	// Lines is the total number of lines.
	Lines int
	// Code is the number of lines with something other than comments and
	// whitespace.
	Code int
}

// commentStyle describes the comment markers of a language.
type commentStyle struct {
	line  []string // markers that comment out the rest of the line
	block bool     // whether /* ... */ comments are recognized
}

var (
	hashStyle  = commentStyle{line: []string{"#"}}
	cStyle     = commentStyle{line: []string{"//"}, block: true}
	mixedStyle = commentStyle{line: []string{"#", "//"}, block: true}
)

var stylesByExt = map[string]commentStyle{
	".sh": hashStyle, ".bash": hashStyle, ".py": hashStyle, ".rb": hashStyle,
	".pl": hashStyle, ".mk": hashStyle, ".yaml": hashStyle, ".yml": hashStyle,
	".toml": hashStyle, ".cmake": hashStyle,

	".c": cStyle, ".h": cStyle, ".cc": cStyle, ".hh": cStyle, ".cpp": cStyle,
	".hpp": cStyle, ".cxx": cStyle, ".m": cStyle, ".go": cStyle, ".java": cStyle,
	".js": cStyle, ".ts": cStyle, ".rs": cStyle, ".swift": cStyle,
	".kt": cStyle, ".css": cStyle, ".scala": cStyle,
}

var stylesByName = map[string]commentStyle{
	"Makefile":   hashStyle,
	"Dockerfile": hashStyle,
}

// styleFor picks comment markers from the file name. Unknown files accept
// all of them.
func styleFor(name string) commentStyle {
	base := path.Base(name)
	if s, ok := stylesByName[base]; ok {
		return s
	}
	if s, ok := stylesByExt[strings.ToLower(path.Ext(base))]; ok {
		return s
	}
	return mixedStyle
}

// CountLines counts the lines and code lines read from r. The name selects
// comment markers by extension. Counting stops without an error at a line
// longer than the scanner accepts.
func CountLines(r io.Reader, name string) (LineCount, error) {
	c := lineCounter{style: styleFor(name)}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), maxLineSize)
	for s.Scan() {
		c.add(s.Text())
	}
	if err := s.Err(); err != nil && !errors.Is(err, bufio.ErrTooLong) {
		return LineCount{}, err
	}
	return c.count, nil
}

type lineCounter struct {
	style   commentStyle
	inBlock bool
	count   LineCount
}

func (c *lineCounter) add(line string) {
	c.count.Lines++
	s := line
	for {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if c.inBlock {
			end := strings.Index(s, "*/")
			if end < 0 {
				return
			}
			c.inBlock = false
			s = s[end+2:]
			continue
		}
		if c.style.block && strings.HasPrefix(s, "/*") {
			c.inBlock = true
			s = s[2:]
			continue
		}
		for _, m := range c.style.line {
			if strings.HasPrefix(s, m) {
				return
			}
		}
		c.count.Code++
		return
	}
}
