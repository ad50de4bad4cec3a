// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"strings"
	"testing"

	"go.astrophena.name/licscan/testutil"
)

func TestCountLines(t *testing.T) {
	cases := map[string]struct {
		name string
		in   string
		want LineCount
	}{
		"c comments": {
			name: "a.c",
			in: `/* Copyright
   All rights reserved. */

#include <stdio.h>
int x; /* trailing */
/* a */ int y;
// line
`,
			want: LineCount{Lines: 7, Code: 3},
		},
		"shell": {
			name: "run.sh",
			in:   "#!/bin/sh\n# comment\n\necho hi # trailing\n  # indented\n",
			want: LineCount{Lines: 5, Code: 1},
		},
		"go": {
			name: "a.go",
			in:   "// Copyright\n\npackage a\n\nvar s = \"/* not a comment */\"\n",
			want: LineCount{Lines: 5, Code: 2},
		},
		"unterminated block": {
			name: "a.h",
			in:   "/*\nx\ny",
			want: LineCount{Lines: 3},
		},
		"unknown extension accepts all markers": {
			name: "notes.txt",
			in:   "# heading\n// note\n/* block */\ntext\n",
			want: LineCount{Lines: 4, Code: 1},
		},
		"by file name": {
			name: "dir/Makefile",
			in:   "all:\n\t# comment\n",
			want: LineCount{Lines: 2, Code: 1},
		},
		"no trailing newline": {
			name: "a.txt",
			in:   "a\nb",
			want: LineCount{Lines: 2, Code: 2},
		},
		"empty": {
			name: "a.txt",
			in:   "",
			want: LineCount{},
		},
		"long line stops counting": {
			name: "blob",
			in:   "a\n" + strings.Repeat("x", maxLineSize+1) + "\nb\n",
			want: LineCount{Lines: 1, Code: 1},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := CountLines(strings.NewReader(tc.in), tc.name)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}
