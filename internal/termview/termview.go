// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package termview draws a converted document in the terminal, the way
// the web preview shows it in the browser.
package termview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"suggestpress/internal/markup"
)

var (
	quoteBarColor = lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#5C5C5C"}
	markerColor   = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#AD8CFF"}
)

// quoteBar prefixes every line of a quoted block.
const quoteBar = "│ "

// View renders fragments with one lipgloss renderer, so colour support is
// detected against the writer the output is headed for.
type View struct {
	r   *lipgloss.Renderer
	bar lipgloss.Style
}

// New creates a View bound to r. Pass lipgloss.DefaultRenderer() for stdout.
func New(r *lipgloss.Renderer) *View {
	return &View{
		r:   r,
		bar: r.NewStyle().Foreground(quoteBarColor),
	}
}

// Render returns the fragment as styled terminal text. Elements are
// separated by a blank line.
func (v *View) Render(frag markup.Fragment) string {
	parts := make([]string, 0, frag.Len())
	for _, el := range frag.Elements {
		lines := make([]string, 0, len(el.Lines))
		for _, ln := range el.Lines {
			text := v.line(ln)
			if el.Kind == markup.Quote {
				text = v.bar.Render(quoteBar) + text
			}
			lines = append(lines, text)
		}
		parts = append(parts, strings.Join(lines, "\n"))
	}
	return strings.Join(parts, "\n\n")
}

func (v *View) line(ln markup.Line) string {
	var sb strings.Builder
	for _, sp := range Spans(ln) {
		st := v.r.NewStyle().
			Bold(sp.Style.Has(markup.Bold)).
			Underline(sp.Style.Has(markup.Underline)).
			Italic(sp.Style.Has(markup.Italic))
		if strings.HasPrefix(sp.Text, markup.Marker) {
			sb.WriteString(st.Foreground(markerColor).Render(markup.Marker))
			sp.Text = strings.TrimPrefix(sp.Text, markup.Marker)
			if sp.Text == "" {
				continue
			}
		}
		sb.WriteString(st.Render(sp.Text))
	}
	return sb.String()
}

// Span is a run of plain text sharing one style.
type Span struct {
	Style markup.Style
	Text  string
}

var tagStyles = map[string]markup.Style{
	"strong": markup.Bold,
	"u":      markup.Underline,
	"em":     markup.Italic,
}

var entityReplacer = strings.NewReplacer("&lt;", "<", "&gt;", ">")

// Spans splits a line's translated text back into styled runs. Tags are
// counted so nested pairs of the same kind keep the style until the last
// one closes. Anything that is not one of the emitted tags is kept as text.
func Spans(ln markup.Line) []Span {
	var (
		spans []Span
		depth = map[markup.Style]int{}
		buf   strings.Builder
	)

	current := func() markup.Style {
		st := ln.Style
		for s, n := range depth {
			if n > 0 {
				st |= s
			}
		}
		return st
	}
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		spans = append(spans, Span{Style: current(), Text: entityReplacer.Replace(buf.String())})
		buf.Reset()
	}

	text := ln.Text
	for len(text) > 0 {
		i := strings.IndexByte(text, '<')
		if i < 0 {
			buf.WriteString(text)
			break
		}
		buf.WriteString(text[:i])
		text = text[i:]

		end := strings.IndexByte(text, '>')
		if end < 0 {
			buf.WriteString(text)
			break
		}
		name := text[1:end]
		closing := strings.HasPrefix(name, "/")
		style, ok := tagStyles[strings.TrimPrefix(name, "/")]
		if !ok {
			buf.WriteString(text[:end+1])
			text = text[end+1:]
			continue
		}

		flush()
		if closing {
			if depth[style] > 0 {
				depth[style]--
			}
		} else {
			depth[style]++
		}
		text = text[end+1:]
	}
	flush()
	return spans
}
