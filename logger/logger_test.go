// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"go.astrophena.name/licscan/testutil"
)

func TestLogfWriter(t *testing.T) {
	var (
		logged  bool
		message string
	)
	logf := func(format string, args ...any) {
		logged = true
		message = fmt.Sprintf(format, args...)
	}
	Logf(logf).Write([]byte("hello"))
	testutil.AssertEqual(t, logged, true)
	testutil.AssertEqual(t, message, "hello")
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	testutil.AssertEqual(t, IsDefault(Get(ctx)), true)

	l := New(new(bytes.Buffer), nil, false)
	ctx = Put(ctx, l)
	testutil.AssertEqual(t, Get(ctx) == l, true)
	testutil.AssertEqual(t, IsDefault(Get(ctx)), false)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, nil, false)
	ctx := Put(context.Background(), l)

	Debug(ctx, "hidden")
	Warn(ctx, "cannot read file", slog.String("path", "a.go"))

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message logged at info level: %q", out)
	}
	for _, want := range []string{"WRN", "cannot read file", "path=a.go"} {
		if !strings.Contains(out, want) {
			t.Errorf("output must contain %q, got %q", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("output must not be colorized: %q", out)
	}

	buf.Reset()
	l.Level.Set(slog.LevelDebug)
	Debug(ctx, "visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("debug message not logged after lowering the level: %q", buf.String())
	}
}
