// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "strings"

// Document is one announcement as composed in the form: a heading, an
// optional subtitle and an ordered list of suggestion blocks.
type Document struct {
	Title    string            `json:"title" yaml:"title"`
	Subtitle string            `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`
	Blocks   []SuggestionBlock `json:"blocks,omitempty" yaml:"blocks,omitempty"`
}

// SuggestionBlock is a single suggestion entry. Items holds one list entry
// per line, exactly as typed into the textarea.
type SuggestionBlock struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Items       string `json:"items,omitempty" yaml:"items,omitempty"`
	Emphasis    string `json:"emphasis,omitempty" yaml:"emphasis,omitempty"`
}

// HasTitle reports whether the block will be rendered at all. A block
// without a title is dropped from every output, whatever its other fields hold.
func (b SuggestionBlock) HasTitle() bool {
	return strings.TrimSpace(b.Title) != ""
}

// IsEmpty reports whether converting the document yields no output.
func (d Document) IsEmpty() bool {
	if strings.TrimSpace(d.Title) != "" || strings.TrimSpace(d.Subtitle) != "" {
		return false
	}
	for _, b := range d.Blocks {
		if b.HasTitle() {
			return false
		}
	}
	return true
}

// Example returns the sample announcement offered by the "Load example"
// button. A fresh copy is returned on every call.
func Example() Document {
	return Document{
		Title:    "General Game Improvement Suggestions",
		Subtitle: "Some ideas for improving gameplay, user-friendliness, and long-term fun.",
		Blocks: []SuggestionBlock{
			{
				Title:       "Quality of Life (QoL) Improvements",
				Description: "Small changes that make the gaming experience smoother and more enjoyable:",
				Items:       "A 'Loot All' button for drops.\nCustomizable UI scale for different screen resolutions.\nAbility to save templates for character builds or gear sets.",
				Emphasis:    "These changes would significantly speed up daily actions.",
			},
			{
				Title:       "New Endgame Content",
				Description: "A new challenge for experienced players to keep them engaged:",
				Items:       "An __**Endless Dungeon**__ or __**Horde Mode**__ with increasing difficulty and leaderboards.\nWeekly world bosses that require community cooperation.",
				Emphasis:    "Provides a reason for veteran players to stay active and test their gear.",
			},
			{
				Title:       "Social & Guild Features",
				Description: "Improvements to strengthen the community and teamwork:",
				Items:       "Introduction of a guild system with shared goals and rewards.\nA trading hub or auction house to safely interact with other players.\nIntegrated voice chat for parties.",
				Emphasis:    "Promotes collaboration and makes the game more vibrant for everyone.",
			},
		},
	}
}
