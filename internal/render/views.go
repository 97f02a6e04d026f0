// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package render

import (
	"html/template"

	"github.com/google/uuid"

	"suggestpress/internal/markup"
	"suggestpress/internal/models"
)

// BlockView is one suggestion block of the form. ID keeps element ids
// unique while blocks are added and removed in the browser.
type BlockView struct {
	ID    string
	Block models.SuggestionBlock
}

// NewBlockViews assigns a fresh ID to every block.
func NewBlockViews(blocks []models.SuggestionBlock) []BlockView {
	views := make([]BlockView, len(blocks))
	for i, b := range blocks {
		views[i] = BlockView{ID: uuid.NewString(), Block: b}
	}
	return views
}

// PreviewView is the data behind the "preview" partial.
type PreviewView struct {
	HTML   template.HTML
	Markup string
	Empty  bool
}

// NewPreviewView wraps a conversion result for the template.
func NewPreviewView(res markup.Result) PreviewView {
	return PreviewView{
		HTML:   res.Fragment.HTML(),
		Markup: res.Markup,
		Empty:  res.IsEmpty(),
	}
}
