// Package view renders the site's HTML pages from embedded templates.
package view

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/clinic-space-site/internal/service"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer.  Each page template is parsed
// together with layout.html and executed through the "layout" template.
type Renderer struct {
	pages map[string]*template.Template
}

// Funcs available to every template.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"brl": service.FormatBRL,
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("02/01/2006")
		},
		// content bodies are authored in the admin tool and stored as HTML
		"html":   func(s string) template.HTML { return template.HTML(s) },
		"jsonld": JSONLD,
		"join":   strings.Join,
	}
}

// New parses every page template.  It fails on the first template error so
// a broken template stops the server at startup instead of at request time.
func New() (*Renderer, error) {
	names, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: map[string]*template.Template{}}
	for _, n := range names {
		base := strings.TrimSuffix(path.Base(n), ".html")
		if base == "layout" {
			continue
		}
		t, err := template.New(base).Funcs(Funcs()).ParseFS(templateFS, "templates/layout.html", n)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", base, err)
		}
		r.pages[base] = t
	}
	return r, nil
}

// Render executes the named page.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// JSONLD marshals v for a <script type="application/ld+json"> block.
// template.JS is inserted verbatim; closing tags in user text cannot end
// the script element only because json.Marshal escapes <, > and & as
// \u003c, \u003e and \u0026.  Keep that escaping if the encoder changes.
func JSONLD(v any) template.JS {
	b, err := json.Marshal(v)
	if err != nil {
		return template.JS("{}")
	}
	return template.JS(b)
}
