// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markdown converts Markdown source text into HTML using goldmark.
// The composer uses it for the formatting help panel shown beside the form.
package markdown

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"sync"

	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

//go:embed help.md
var helpSource []byte

// md is the configured goldmark instance, reused across calls. Raw HTML in
// the source is dropped, not passed through.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		highlighting.NewHighlighting(
			highlighting.WithStyle("monokai"),
		),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
)

var (
	helpOnce sync.Once
	helpHTML template.HTML
	helpErr  error
)

// ToHTML converts Markdown source into HTML.
func ToHTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Help returns the rendered formatting help. It is converted once and
// cached for the life of the process.
func Help() (template.HTML, error) {
	helpOnce.Do(func() {
		out, err := ToHTML(string(helpSource))
		if err != nil {
			helpErr = fmt.Errorf("render help: %w", err)
			return
		}
		helpHTML = template.HTML(out)
	})
	return helpHTML, helpErr
}
