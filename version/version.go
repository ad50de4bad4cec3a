// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports build information of the running binary.
package version

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"go.astrophena.name/licscan/syncx"
)

// Info describes a build.
type Info struct {
	// Name is the command name.
	Name string
	// Module is the main module version, "(devel)" for local builds.
	Module string
	// Commit is the VCS revision, if known.
	Commit string
	// Modified reports whether the working tree had uncommitted changes.
	Modified bool
	// Go is the toolchain version.
	Go string
}

// String returns a multi-line human-readable description of i.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", i.Name, i.Module)
	if i.Commit != "" {
		commit := i.Commit
		if i.Modified {
			commit += " (modified)"
		}
		fmt.Fprintf(&sb, "commit: %s\n", commit)
	}
	fmt.Fprintf(&sb, "go: %s\n", i.Go)
	return sb.String()
}

var info syncx.Lazy[Info]

// Version returns build information of the running binary.
func Version() Info {
	return info.Get(func() Info {
		i := Info{Name: CmdName(), Module: "(devel)", Go: runtime.Version()}
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return i
		}
		if v := bi.Main.Version; v != "" {
			i.Module = v
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				i.Commit = s.Value
			case "vcs.modified":
				i.Modified = s.Value == "true"
			}
		}
		return i
	})
}

// CmdName returns the name of the running command.
func CmdName() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Path != "" && !strings.HasSuffix(bi.Path, ".test") {
		return path.Base(bi.Path)
	}
	return strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
}
