// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markup

import (
	"html/template"
	"strings"
)

// Style is a set of presentation attributes applied to a whole line.
type Style uint8

const (
	Bold Style = 1 << iota
	Underline
	Italic
)

// Has reports whether every attribute in other is set on s.
func (s Style) Has(other Style) bool {
	return s&other == other
}

// ElementKind distinguishes top-level paragraphs from quoted blocks.
type ElementKind int

const (
	Paragraph ElementKind = iota
	Quote
)

// Line is one rendered line of the preview. Text has already been through
// Translate, so it is safe to emit as HTML.
type Line struct {
	Style Style
	Text  string
}

// Element is a paragraph (exactly one line) or a quote holding the lines
// of one suggestion block.
type Element struct {
	Kind  ElementKind
	Lines []Line
}

// Fragment is the presentation tree shown next to the form.
type Fragment struct {
	Elements []Element
}

// Len returns the number of top-level elements.
func (f Fragment) Len() int {
	return len(f.Elements)
}

// HTML renders the fragment. Paragraphs become <p>, quotes become
// <blockquote> with lines separated by <br>. The last line of a quote never
// gets a trailing <br>, whether or not it is the emphasis line.
func (f Fragment) HTML() template.HTML {
	var sb strings.Builder
	for _, el := range f.Elements {
		switch el.Kind {
		case Quote:
			sb.WriteString("<blockquote>")
			for i, ln := range el.Lines {
				if i > 0 {
					sb.WriteString("<br>")
				}
				writeLine(&sb, ln)
			}
			sb.WriteString("</blockquote>")
		default:
			sb.WriteString("<p>")
			for _, ln := range el.Lines {
				writeLine(&sb, ln)
			}
			sb.WriteString("</p>")
		}
	}
	return template.HTML(sb.String())
}

// writeLine wraps the line text in strong, u and em, outermost first.
func writeLine(sb *strings.Builder, ln Line) {
	if ln.Style.Has(Bold) {
		sb.WriteString("<strong>")
	}
	if ln.Style.Has(Underline) {
		sb.WriteString("<u>")
	}
	if ln.Style.Has(Italic) {
		sb.WriteString("<em>")
	}
	sb.WriteString(ln.Text)
	if ln.Style.Has(Italic) {
		sb.WriteString("</em>")
	}
	if ln.Style.Has(Underline) {
		sb.WriteString("</u>")
	}
	if ln.Style.Has(Bold) {
		sb.WriteString("</strong>")
	}
}
