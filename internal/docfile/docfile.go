// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package docfile reads and writes documents as JSON or YAML files. The
// format is picked from the file extension.
package docfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"suggestpress/internal/models"
)

// Format identifies a document file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for extensions and format names that are
// neither JSON nor YAML.
var ErrUnknownFormat = errors.New("unknown document format")

// ParseFormat maps a format name ("json", "yaml", "yml") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatOf returns the format implied by a file's extension.
func FormatOf(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Decode reads one document from r.
func Decode(r io.Reader, f Format) (models.Document, error) {
	var doc models.Document
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return models.Document{}, fmt.Errorf("decode json: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return models.Document{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return models.Document{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return doc, nil
}

// Encode writes doc to w.
func Encode(w io.Writer, doc models.Document, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return nil
}

// Load reads the document stored at path.
func Load(path string) (models.Document, error) {
	f, err := FormatOf(path)
	if err != nil {
		return models.Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Document{}, fmt.Errorf("read document: %w", err)
	}
	doc, err := Decode(bytes.NewReader(data), f)
	if err != nil {
		return models.Document{}, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Save writes doc to path, replacing any existing file.
func Save(path string, doc models.Document) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, doc, f); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}
