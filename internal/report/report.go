// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package report formats scan results.
package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.astrophena.name/licscan/license"
)

// ErrUnknownFormat is returned by [New] for an unsupported format.
var ErrUnknownFormat = errors.New("unknown format")

// Formats lists the supported output formats.
var Formats = []string{"text", "json", "html"}

// Writer receives reports in scan order.
type Writer interface {
	// Add writes or buffers a report.
	Add(license.Report) error
	// Flush writes buffered output. It is called once after the last report.
	Flush(context.Context) error
}

// New returns a Writer for format that writes to w.
func New(format string, w io.Writer) (Writer, error) {
	switch format {
	case "text":
		return &textWriter{w: w}, nil
	case "json":
		return &jsonWriter{enc: json.NewEncoder(w)}, nil
	case "html":
		return &htmlWriter{w: w}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

// NoLicense is printed for files without a recognized license.
const NoLicense = "no or unknown license"

// Line formats r the way the text writer prints it, without a newline.
func Line(r license.Report) string {
	if r.License == "" {
		return r.Path + "... " + NoLicense
	}
	return fmt.Sprintf("%s... %s (%s, %s by %s)", r.Path, r.License, r.Fields.Brand(), r.Fields.Date(), r.Fields.Grantor())
}

type textWriter struct {
	w io.Writer
}

func (tw *textWriter) Add(r license.Report) error {
	_, err := fmt.Fprintln(tw.w, Line(r))
	return err
}

func (tw *textWriter) Flush(context.Context) error { return nil }

type jsonWriter struct {
	enc *json.Encoder
}

type jsonReport struct {
	Path      string            `json:"path"`
	License   string            `json:"license,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	Lines     int               `json:"lines"`
	CodeLines int               `json:"code_lines"`
	Error     string            `json:"error,omitempty"`
}

func (jw *jsonWriter) Add(r license.Report) error {
	jr := jsonReport{
		Path:      r.Path,
		License:   r.License,
		Fields:    r.Fields,
		Lines:     r.Lines,
		CodeLines: r.CodeLines,
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
	}
	return jw.enc.Encode(jr)
}

func (jw *jsonWriter) Flush(context.Context) error { return nil }

type htmlWriter struct {
	w       io.Writer
	reports []license.Report
}

func (hw *htmlWriter) Add(r license.Report) error {
	hw.reports = append(hw.reports, r)
	return nil
}

func (hw *htmlWriter) Flush(ctx context.Context) error {
	return Page("License report", hw.reports).Render(ctx, hw.w)
}
