// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the composer UI.
// It supports full-page and htmx partial rendering, automatically detecting
// the request type via the HX-Request header.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"suggestpress/internal/middleware"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to page templates.
type PageData struct {
	Title     string         // Page title for <title> tag
	CSRFToken string         // CSRF token for forms and htmx headers
	Data      map[string]any // Page-specific data
}

// Renderer handles template parsing and execution.
type Renderer struct {
	pages    map[string]*template.Template
	partials *template.Template
	funcMap  template.FuncMap
}

// New parses every page template together with the base layout and the
// shared partials (files starting with "_"). devMode shows a banner in the
// page header.
func New(devMode bool) (*Renderer, error) {
	r := &Renderer{
		pages: make(map[string]*template.Template),
		funcMap: template.FuncMap{
			"isDev": func() bool {
				return devMode
			},
		},
	}

	partials, err := template.New("partials").Funcs(r.funcMap).ParseFS(templateFS, "templates/_*.html")
	if err != nil {
		return nil, fmt.Errorf("parse partials: %w", err)
	}
	r.partials = partials

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}

	for _, file := range files {
		name := path.Base(file)
		if name == "base.html" || strings.HasPrefix(name, "_") {
			continue
		}

		tmpl, err := template.New("base.html").Funcs(r.funcMap).ParseFS(
			templateFS, "templates/base.html", "templates/_*.html", file,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}

		r.pages[strings.TrimSuffix(name, ".html")] = tmpl
	}

	return r, nil
}

// Page renders a full page or, for htmx requests, only its "content" block.
func (rn *Renderer) Page(w http.ResponseWriter, r *http.Request, name string, data *PageData) {
	tmpl, ok := rn.pages[name]
	if !ok {
		http.Error(w, fmt.Sprintf("template %q not found", name), http.StatusInternalServerError)
		return
	}

	data.CSRFToken = middleware.CSRFTokenFromCtx(r.Context())

	execName := "base.html"
	if isHTMX(r) {
		execName = "content"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := executeTemplate(w, tmpl, execName, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// Partial renders a single named partial such as "preview" or "block".
func (rn *Renderer) Partial(w http.ResponseWriter, name string, data any) error {
	if rn.partials.Lookup(name) == nil {
		return fmt.Errorf("partial %q not found", name)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return executeTemplate(w, rn.partials, name, data)
}

// executeTemplate wraps template execution with error handling.
func executeTemplate(w io.Writer, tmpl *template.Template, name string, data any) error {
	return tmpl.ExecuteTemplate(w, name, data)
}

// isHTMX returns true if the request was made by htmx (has HX-Request header).
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
