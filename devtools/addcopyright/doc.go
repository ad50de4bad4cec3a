// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Addcopyright adds a copyright header to files that don't carry a recognized
license notice.

It walks the current directory with the same scanner as licscan and, for
every file where no built-in template matches, prepends a header based on the
file extension.

The tool is configured through a .devtools/config.txtar file in the project's
root directory. This file is a txtar archive and can contain the following
files:

  - copyright/exclusions.json: A JSON array of path suffixes to exclude from
    processing.
  - copyright/template.{ext}: A template for the copyright header of files
    with the extension ext (e.g., template.go). The template can contain a
    formatting verb %d for the year of the file's last modification.

Files with an extension that has no template are left alone.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/licscan/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
