// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Licscan reports the license notice found in the header of each file of a
source tree.

Usage:

	licscan [flags] <root>

It walks root recursively and, for every regular file, compares the leading
lines with each known license template in turn. The comment marker in front
of every header line (#, //, * and the like) is ignored. A line is printed
per file:

	src/main.c... BSD (fortylines, 2009 by Sebastien Mirolo)
	notes.txt... no or unknown license

The built-in templates are BSD (three-clause BSD header), BSD-Go (the Go
project "BSD-style license" header) and ISC.

More templates and exclusions can be loaded from a txtar archive passed with
-config. It can contain the following files:

  - exclusions.json: A JSON array of path suffixes. Matching files and
    directories are skipped.
  - templates/{Name}.txt: A template named Name. Each line is a regular
    expression that must match at the start of a header line, after leading
    and trailing spaces are removed. Named groups (?P<date>...),
    (?P<grantor>...) and (?P<brand>...) capture attribution fields.

Files that can't be read are reported as having no license, and a warning is
logged. The exit code is 0 unless arguments or configuration are invalid.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/licscan/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
