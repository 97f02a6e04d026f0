// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package markup converts announcement documents into the chat markup
// dialect (bold **, underline __, italic *, blockquote >, bullet •) and
// into an equivalent HTML preview fragment.
//
// Everything in this package is a pure function of its input: compiled
// patterns are package-level and never mutated, so conversions may run
// concurrently and as often as the caller likes.
package markup

import (
	"regexp"
	"strings"
)

var (
	// angleEscaper neutralises raw tags before any token is expanded.
	angleEscaper = strings.NewReplacer("<", "&lt;", ">", "&gt;")

	// Shortest match, left to right. Bold must run before italic so that
	// "**x**" is not read as two empty italics.
	boldPattern      = regexp.MustCompile(`\*\*(.*?)\*\*`)
	underlinePattern = regexp.MustCompile(`__(.*?)__`)
	italicPattern    = regexp.MustCompile(`\*(.*?)\*`)
)

// Translate turns inline tokens in text into HTML. Angle brackets are
// escaped first, then **bold**, __underline__ and *italic* spans are
// expanded in that order. Delimiters without a partner are left as typed.
//
// There is no way to write a literal "**" or "__"; the dialect has no
// escape character.
func Translate(text string) string {
	if text == "" {
		return ""
	}
	out := angleEscaper.Replace(text)
	out = boldPattern.ReplaceAllString(out, "<strong>${1}</strong>")
	out = underlinePattern.ReplaceAllString(out, "<u>${1}</u>")
	out = italicPattern.ReplaceAllString(out, "<em>${1}</em>")
	return out
}
