// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"suggestpress/internal/markup"
	"suggestpress/internal/middleware"
	"suggestpress/internal/models"
	"suggestpress/internal/render"
)

// Form field names. Block fields repeat once per block, in form order.
const (
	fieldTitle            = "title"
	fieldSubtitle         = "subtitle"
	fieldBlockTitle       = "block_title"
	fieldBlockDescription = "block_description"
	fieldBlockItems       = "block_items"
	fieldBlockEmphasis    = "block_emphasis"
)

// Composer groups the handlers behind the announcement form: the page
// itself, the live preview and the block partial.
type Composer struct {
	renderer *render.Renderer
	help     template.HTML
	maxBody  int64
}

// NewComposer creates the Composer handler group. help is the rendered
// formatting guide shown under the form.
func NewComposer(renderer *render.Renderer, help template.HTML, maxBody int64) *Composer {
	return &Composer{renderer: renderer, help: help, maxBody: maxBody}
}

// Form renders an empty composer with a single blank suggestion block.
func (c *Composer) Form(w http.ResponseWriter, r *http.Request) {
	c.page(w, r, models.Document{Blocks: []models.SuggestionBlock{{}}})
}

// Example renders the composer filled with the sample announcement.
func (c *Composer) Example(w http.ResponseWriter, r *http.Request) {
	c.page(w, r, models.Example())
}

// Preview converts the submitted form and answers with the preview partial.
// htmx calls it on every edit.
func (c *Composer) Preview(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, c.maxBody)
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "Request Entity Too Large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	doc := documentFromForm(r.PostForm)
	if msg := validateDocument(doc); msg != "" {
		http.Error(w, msg, http.StatusUnprocessableEntity)
		return
	}

	live := markup.NewLive(documentProvider(doc), markup.SinkFunc(func(res markup.Result) error {
		return c.renderer.Partial(w, "preview", render.NewPreviewView(res))
	}))
	if err := live.Refresh(); err != nil {
		slog.Error("render preview failed",
			"error", err,
			"request_id", middleware.RequestIDFromCtx(r.Context()),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// NewBlock answers with an empty suggestion block to append to the form.
func (c *Composer) NewBlock(w http.ResponseWriter, r *http.Request) {
	views := render.NewBlockViews([]models.SuggestionBlock{{}})
	if err := c.renderer.Partial(w, "block", views[0]); err != nil {
		slog.Error("render block failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// page renders the composer for doc with its preview already filled in.
func (c *Composer) page(w http.ResponseWriter, r *http.Request, doc models.Document) {
	c.renderer.Page(w, r, "compose", &render.PageData{
		Title: "Compose",
		Data: map[string]any{
			"Document": doc,
			"Blocks":   render.NewBlockViews(doc.Blocks),
			"Preview":  render.NewPreviewView(markup.Convert(doc)),
			"Help":     c.help,
		},
	})
}

// documentProvider hands an already decoded document to the converter.
func documentProvider(doc models.Document) markup.Provider {
	return markup.ProviderFunc(func() (models.Document, error) {
		return doc, nil
	})
}

// documentFromForm rebuilds the document from form values. Block fields are
// matched by position; a block missing a field gets it empty.
func documentFromForm(form url.Values) models.Document {
	doc := models.Document{
		Title:    form.Get(fieldTitle),
		Subtitle: form.Get(fieldSubtitle),
	}

	titles := form[fieldBlockTitle]
	descs := form[fieldBlockDescription]
	items := form[fieldBlockItems]
	emphs := form[fieldBlockEmphasis]

	n := max(len(titles), len(descs), len(items), len(emphs))
	for i := 0; i < n; i++ {
		doc.Blocks = append(doc.Blocks, models.SuggestionBlock{
			Title:       at(titles, i),
			Description: at(descs, i),
			Items:       at(items, i),
			Emphasis:    at(emphs, i),
		})
	}
	return doc
}

// at returns values[i] or "" when i is out of range.
func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}
