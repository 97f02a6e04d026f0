// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package markup

import (
	"fmt"

	"suggestpress/internal/models"
)

// Provider supplies the current document snapshot, e.g. a parsed form
// submission or a file on disk.
type Provider interface {
	Document() (models.Document, error)
}

// Sink receives every fresh conversion, e.g. an HTTP response, a terminal
// or the clipboard.
type Sink interface {
	Render(Result) error
}

// ProviderFunc adapts a plain function to Provider.
type ProviderFunc func() (models.Document, error)

// Document calls f.
func (f ProviderFunc) Document() (models.Document, error) { return f() }

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(Result) error

// Render calls f.
func (f SinkFunc) Render(r Result) error { return f(r) }

// Live ties a provider to a sink. The caller decides when the document has
// changed and calls Refresh; Live keeps no state between refreshes.
type Live struct {
	provider Provider
	sink     Sink
}

// NewLive creates a Live binding.
func NewLive(p Provider, s Sink) *Live {
	return &Live{provider: p, sink: s}
}

// Refresh reads the current document, converts it and hands the result to
// the sink.
func (l *Live) Refresh() error {
	doc, err := l.provider.Document()
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}
	if err := l.sink.Render(Convert(doc)); err != nil {
		return fmt.Errorf("render result: %w", err)
	}
	return nil
}
