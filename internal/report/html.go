// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package report

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"go.astrophena.name/licscan/license"
)

const style = `body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: .25rem .5rem; text-align: left; }
td.num { text-align: right; }
tr.none td.license { color: #a00; }`

// Page renders reports as a standalone HTML document with one table row per
// file.
func Page(title string, reports []license.Report) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		found := 0
		for _, r := range reports {
			if r.License != "" {
				found++
			}
		}

		p := &printer{w: w}
		p.raw("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n<title>")
		p.text(title)
		p.raw("</title>\n<style>\n" + style + "\n</style>\n</head>\n<body>\n<h1>")
		p.text(title)
		p.raw("</h1>\n<p>")
		p.text(strconv.Itoa(found) + " of " + strconv.Itoa(len(reports)) + " files have a recognized license.")
		p.raw("</p>\n<table>\n")
		p.render(ctx, header())
		for _, r := range reports {
			if err := ctx.Err(); err != nil {
				return err
			}
			p.render(ctx, row(r))
		}
		p.raw("</table>\n</body>\n</html>\n")
		return p.err
	})
}

func header() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.raw("<tr>")
		for _, name := range []string{"File", "License", "Brand", "Date", "Grantor", "Code lines", "Lines"} {
			p.raw("<th>")
			p.text(name)
			p.raw("</th>")
		}
		p.raw("</tr>\n")
		return p.err
	})
}

// row renders a single file.
func row(r license.Report) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		if r.License == "" {
			p.raw("<tr class=\"none\">")
			p.cell("", r.Path)
			p.raw("<td class=\"license\" colspan=\"4\">")
			p.text(NoLicense)
			p.raw("</td>")
		} else {
			p.raw("<tr>")
			p.cell("", r.Path)
			p.cell("license", r.License)
			p.cell("", r.Fields.Brand())
			p.cell("", r.Fields.Date())
			p.cell("", r.Fields.Grantor())
		}
		p.cell("num", strconv.Itoa(r.CodeLines))
		p.cell("num", strconv.Itoa(r.Lines))
		p.raw("</tr>\n")
		return p.err
	})
}

// printer writes to w until the first error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) raw(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) text(s string) { p.raw(templ.EscapeString(s)) }

func (p *printer) cell(class, s string) {
	if class == "" {
		p.raw("<td>")
	} else {
		p.raw("<td class=\"" + class + "\">")
	}
	p.text(s)
	p.raw("</td>")
}

func (p *printer) render(ctx context.Context, c templ.Component) {
	if p.err != nil {
		return
	}
	p.err = c.Render(ctx, p.w)
}
