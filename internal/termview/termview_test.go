// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package termview

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"suggestpress/internal/markup"
	"suggestpress/internal/models"
)

// plainView renders into a buffer, which lipgloss treats as a colourless
// terminal.
func plainView() *View {
	return New(lipgloss.NewRenderer(&bytes.Buffer{}))
}

func TestSpans(t *testing.T) {
	tests := []struct {
		name string
		line markup.Line
		want []Span
	}{
		{
			name: "plain",
			line: markup.Line{Text: "hello"},
			want: []Span{{Text: "hello"}},
		},
		{
			name: "line style applies to every span",
			line: markup.Line{Style: markup.Italic, Text: "a <strong>b</strong>"},
			want: []Span{
				{Style: markup.Italic, Text: "a "},
				{Style: markup.Italic | markup.Bold, Text: "b"},
			},
		},
		{
			name: "nested tags",
			line: markup.Line{Text: "<u><strong>x</strong></u>y"},
			want: []Span{
				{Style: markup.Underline | markup.Bold, Text: "x"},
				{Text: "y"},
			},
		},
		{
			name: "entities are unescaped",
			line: markup.Line{Text: markup.Translate("<b> **1 > 0**")},
			want: []Span{
				{Text: "<b> "},
				{Style: markup.Bold, Text: "1 > 0"},
			},
		},
		{
			name: "unbalanced closing tag is ignored",
			line: markup.Line{Text: "a</em>b"},
			want: []Span{{Text: "a"}, {Text: "b"}},
		},
		{
			name: "empty pair",
			line: markup.Line{Text: "<em></em>a"},
			want: []Span{{Text: "a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Spans(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Spans(%q) = %+v, want %+v", tt.line.Text, got, tt.want)
			}
		})
	}
}

func TestRenderPlain(t *testing.T) {
	res := markup.Convert(models.Document{
		Title:    "Plans",
		Subtitle: "for *the* week",
		Blocks: []models.SuggestionBlock{
			{Title: "Games", Items: "Chess\nGo", Emphasis: "pick one"},
		},
	})

	got := plainView().Render(res.Fragment)
	want := strings.Join([]string{
		"➤ Plans",
		"",
		"for the week",
		"",
		"│ ➤ Games",
		"│ • Chess",
		"│ • Go",
		"│ pick one",
	}, "\n")

	if got != want {
		t.Errorf("Render:\ngot\n%s\nwant\n%s", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := plainView().Render(markup.Fragment{}); got != "" {
		t.Errorf("Render(empty) = %q, want empty", got)
	}
}
