// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	"go.astrophena.name/licscan/testutil"
)

const bsdHeader = `# Copyright (c) 2009, Sebastien Mirolo
#   All rights reserved.
#
#   Redistribution and use in source and binary forms, with or without
#   modification, are permitted provided that the following conditions are met:
#     * Redistributions of source code must retain the above copyright
#       notice, this list of conditions and the following disclaimer.
#     * Redistributions in binary form must reproduce the above copyright
#       notice, this list of conditions and the following disclaimer in the
#       documentation and/or other materials provided with the distribution.
#     * Neither the name of fortylines nor the
#       names of its contributors may be used to endorse or promote products
#       derived from this software without specific prior written permission.

#   THIS SOFTWARE IS PROVIDED BY Sebastien Mirolo ''AS IS'' AND ANY
#   EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE IMPLIED
#   WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
#   DISCLAIMED. IN NO EVENT SHALL Sebastien Mirolo BE LIABLE FOR ANY
#   DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES
#   (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES;
#   LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND
#   ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
#  (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE OF THIS
#   SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"a.py":                {Data: []byte("#!/usr/bin/env python\n#\n" + bsdHeader + "\nimport os\n")},
		"b.txt":               {Data: []byte("just some notes\n")},
		"lib/c.sh":            {Data: []byte(bsdHeader + "echo\n")},
		"lib/vendor/d.go":     {Data: []byte("package d\n")},
		"lib/z/e.go":          {Data: []byte("// © 2026 Someone. All rights reserved.\n// Use of this source code is governed by the ISC\n// license that can be found in the LICENSE file.\n")},
		"link":                {Data: []byte("a.py"), Mode: fs.ModeSymlink},
		"empty":               {Data: []byte{}},
		"lib/vendor/skip/f.c": {Data: []byte(bsdHeader)},
	}
}

func collect(t *testing.T, s *Scanner, fsys fs.FS, root string) []Report {
	t.Helper()
	return slices.Collect(s.Scan(context.Background(), fsys, root))
}

func summarize(reports []Report) []string {
	var out []string
	for _, r := range reports {
		line := r.Path + ": " + r.License
		if r.Err != nil {
			line += " error"
		}
		out = append(out, line)
	}
	return out
}

func TestScan(t *testing.T) {
	s := &Scanner{}
	got := collect(t, s, testFS(), ".")

	testutil.AssertEqual(t, summarize(got), []string{
		"a.py: BSD",
		"b.txt: ",
		"empty: ",
		"lib/c.sh: BSD",
		"lib/vendor/d.go: ",
		"lib/vendor/skip/f.c: BSD",
		"lib/z/e.go: ISC",
	})
	testutil.AssertEqual(t, got[0].Fields, Fields{
		FieldDate:    "2009",
		FieldGrantor: "Sebastien Mirolo",
		FieldBrand:   "fortylines",
	})
	testutil.AssertEqual(t, [2]int{got[0].Lines, got[0].CodeLines}, [2]int{28, 1})
	testutil.AssertEqual(t, [2]int{got[6].Lines, got[6].CodeLines}, [2]int{3, 0})
	testutil.AssertEqual(t, [2]int{got[2].Lines, got[2].CodeLines}, [2]int{0, 0})
}

func TestScanSubtree(t *testing.T) {
	got := collect(t, &Scanner{}, testFS(), "lib/z")
	testutil.AssertEqual(t, summarize(got), []string{"lib/z/e.go: ISC"})

	got = collect(t, &Scanner{}, testFS(), "a.py")
	testutil.AssertEqual(t, summarize(got), []string{"a.py: BSD"})
}

func TestScanExclude(t *testing.T) {
	s := &Scanner{
		Exclude: func(path string) bool {
			return strings.HasSuffix(path, "vendor") || strings.HasSuffix(path, ".txt")
		},
	}
	got := collect(t, s, testFS(), ".")
	testutil.AssertEqual(t, summarize(got), []string{
		"a.py: BSD",
		"empty: ",
		"lib/c.sh: BSD",
		"lib/z/e.go: ISC",
	})
}

func TestScanParallel(t *testing.T) {
	fsys := testFS()
	for i := range 50 {
		fsys["many/"+strings.Repeat("x", i%7)+string(rune('a'+i%26))+"/"+string(rune('a'+i/26))+".sh"] = &fstest.MapFile{Data: []byte(bsdHeader)}
	}

	want := summarize(collect(t, &Scanner{}, fsys, "."))
	for _, n := range []int{2, 4, 16} {
		stats := new(Stats)
		got := summarize(collect(t, &Scanner{Parallel: n, Stats: stats}, fsys, "."))
		testutil.AssertEqual(t, got, want)
		testutil.AssertEqual(t, stats.Count("BSD"), int64(53))
		testutil.AssertEqual(t, stats.Count("ISC"), int64(1))
		testutil.AssertEqual(t, stats.Count(""), int64(3))
	}
}

func TestScanStopEarly(t *testing.T) {
	for _, n := range []int{1, 3} {
		s := &Scanner{Parallel: n}
		var got []string
		for r := range s.Scan(context.Background(), testFS(), ".") {
			got = append(got, r.Path)
			if len(got) == 2 {
				break
			}
		}
		testutil.AssertEqual(t, got, []string{"a.py", "b.txt"})
	}
}

func TestScanCanceled(t *testing.T) {
	for _, n := range []int{1, 3} {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		var got []string
		for r := range (&Scanner{Parallel: n}).Scan(ctx, testFS(), ".") {
			got = append(got, r.Path)
			cancel()
		}
		testutil.AssertEqual(t, got, []string{"a.py"})
	}
}

// failingFS fails to open files named "secret".
type failingFS struct{ fs.FS }

func (f failingFS) Open(name string) (fs.File, error) {
	if strings.HasSuffix(name, "secret") {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	return f.FS.Open(name)
}

func TestScanErrors(t *testing.T) {
	mfs := testFS()
	mfs["lib/secret"] = &fstest.MapFile{Data: []byte("hidden")}
	stats := new(Stats)

	got := collect(t, &Scanner{Stats: stats}, failingFS{mfs}, "lib")
	testutil.AssertEqual(t, summarize(got), []string{
		"lib/c.sh: BSD",
		"lib/secret:  error",
		"lib/vendor/d.go: ",
		"lib/vendor/skip/f.c: BSD",
		"lib/z/e.go: ISC",
	})
	if !errors.Is(got[1].Err, fs.ErrPermission) {
		t.Errorf("want fs.ErrPermission, got %v", got[1].Err)
	}
	testutil.AssertEqual(t, stats.Counts(), map[string]int64{"BSD": 2, "ISC": 1, "": 2})

	got = collect(t, &Scanner{}, os.DirFS(t.TempDir()), "missing")
	if len(got) != 1 || !errors.Is(got[0].Err, fs.ErrNotExist) {
		t.Fatalf("want a single fs.ErrNotExist report, got %v", got)
	}
}
