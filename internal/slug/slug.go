// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug turns document titles into file-system friendly names.
package slug

import (
	"strings"
	"unicode"
)

// fallback names documents whose title has nothing usable.
const fallback = "document"

// maxLen caps slugs so generated file names stay portable.
const maxLen = 64

// Generate creates a lowercase, hyphen-separated slug. Letters and digits
// are kept, chat markup and punctuation are dropped and runs of spaces,
// underscores or hyphens become a single hyphen.
// Example: "__**Weekend Plans!**__" → "weekend-plans"
func Generate(s string) string {
	var sb strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
			}
			pendingHyphen = false
			sb.WriteRune(r)
		case unicode.IsSpace(r) || r == '-' || r == '_':
			pendingHyphen = true
		}
	}
	return truncate(sb.String())
}

// FileName returns slug(title) + "." + ext, or "document.<ext>" when the
// title yields an empty slug.
func FileName(title, ext string) string {
	name := Generate(title)
	if name == "" {
		name = fallback
	}
	return name + "." + strings.TrimPrefix(ext, ".")
}

// truncate cuts s to at most maxLen bytes on a rune boundary and drops a
// trailing hyphen left by the cut.
func truncate(s string) string {
	if len(s) <= maxLen {
		return s
	}
	cut := 0
	for i := range s {
		if i > maxLen {
			break
		}
		cut = i
	}
	return strings.TrimRight(s[:cut], "-")
}
