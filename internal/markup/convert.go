// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markup

import (
	"strings"
	"unicode"

	"suggestpress/internal/models"
)

const (
	// Marker prefixes the document title and every block heading.
	Marker = "➤ "

	// Bullet starts every list item. Items typed with it are kept as-is.
	Bullet = "•"
)

// Result holds both outputs of a conversion. Every element line in
// Fragment has exactly one counterpart line in Markup.
type Result struct {
	Markup   string
	Fragment Fragment
}

// IsEmpty reports whether the conversion produced nothing.
func (r Result) IsEmpty() bool {
	return r.Markup == "" && r.Fragment.Len() == 0
}

// Convert serializes doc into the markup dialect and the preview fragment.
// Field values are trimmed first; a field that is empty after trimming
// emits nothing, and a block with an empty title is skipped entirely.
//
// The markup string keeps the author's inline tokens untouched because its
// consumer understands the same dialect. Only the fragment goes through
// Translate.
func Convert(doc models.Document) Result {
	var md strings.Builder
	var frag Fragment

	if title := strings.TrimSpace(doc.Title); title != "" {
		md.WriteString("__**" + Marker + title + "**__\n\n")
		frag.Elements = append(frag.Elements, Element{
			Kind:  Paragraph,
			Lines: []Line{{Style: Bold | Underline, Text: Marker + Translate(title)}},
		})
	}

	if subtitle := strings.TrimSpace(doc.Subtitle); subtitle != "" {
		md.WriteString("*" + subtitle + "*\n\n")
		frag.Elements = append(frag.Elements, Element{
			Kind:  Paragraph,
			Lines: []Line{{Style: Italic, Text: Translate(subtitle)}},
		})
	}

	for _, b := range doc.Blocks {
		text, el, ok := convertBlock(b)
		if !ok {
			continue
		}
		md.WriteString(text)
		md.WriteString("\n\n")
		frag.Elements = append(frag.Elements, el)
	}

	return Result{
		Markup:   strings.TrimSpace(md.String()),
		Fragment: frag,
	}
}

// convertBlock renders one suggestion block as quoted markup lines and the
// matching quote element. ok is false when the block has no title.
func convertBlock(b models.SuggestionBlock) (text string, el Element, ok bool) {
	title := strings.TrimSpace(b.Title)
	if title == "" {
		return "", Element{}, false
	}

	var sb strings.Builder
	el.Kind = Quote

	sb.WriteString("> **" + Marker + title + "**\n")
	el.Lines = append(el.Lines, Line{Style: Bold, Text: Marker + Translate(title)})

	if desc := strings.TrimSpace(b.Description); desc != "" {
		sb.WriteString("> *" + desc + "*\n")
		el.Lines = append(el.Lines, Line{Style: Italic, Text: Translate(desc)})
	}

	for _, item := range ListItems(b.Items) {
		sb.WriteString("> " + item + "\n")
		el.Lines = append(el.Lines, Line{Text: Translate(item)})
	}

	if emph := strings.TrimSpace(b.Emphasis); emph != "" {
		sb.WriteString("> _" + emph + "_\n")
		el.Lines = append(el.Lines, Line{Style: Italic, Text: Translate(emph)})
	}

	return strings.TrimRightFunc(sb.String(), unicode.IsSpace), el, true
}

// ListItems splits a textarea value into bulleted list entries. Blank lines
// are dropped, each entry is trimmed, and entries not already starting with
// the bullet get "• " prepended. CRLF line endings from browsers are handled
// by the trim.
func ListItems(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, Bullet) {
			line = Bullet + " " + line
		}
		items = append(items, line)
	}
	return items
}
