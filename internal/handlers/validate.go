// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"suggestpress/internal/models"
)

// Validation limits for submitted documents.
const (
	maxBlocks      = 50
	maxTitleLen    = 300
	maxSubtitleLen = 1_000
	maxTextLen     = 2_000
	maxItemsLen    = 10_000
)

// validateDocument checks a submitted document and returns the first error
// found, or "" if it is acceptable.
func validateDocument(doc models.Document) string {
	if utf8.RuneCountInString(strings.TrimSpace(doc.Title)) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(strings.TrimSpace(doc.Subtitle)) > maxSubtitleLen {
		return "Subtitle is too long (max 1,000 characters)."
	}
	if len(doc.Blocks) > maxBlocks {
		return "Too many suggestion blocks (max 50)."
	}
	for i, b := range doc.Blocks {
		if msg := validateBlock(b); msg != "" {
			return fmt.Sprintf("Block %d: %s", i+1, msg)
		}
	}
	return ""
}

// validateBlock checks the fields of one suggestion block.
func validateBlock(b models.SuggestionBlock) string {
	if utf8.RuneCountInString(strings.TrimSpace(b.Title)) > maxTitleLen {
		return "title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(strings.TrimSpace(b.Description)) > maxTextLen {
		return "description is too long (max 2,000 characters)."
	}
	if utf8.RuneCountInString(b.Items) > maxItemsLen {
		return "items are too long (max 10,000 characters)."
	}
	if utf8.RuneCountInString(strings.TrimSpace(b.Emphasis)) > maxTextLen {
		return "emphasis is too long (max 2,000 characters)."
	}
	return ""
}
