// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"suggestpress/internal/markup"
	"suggestpress/internal/models"
)

// ConvertResponse is the JSON body returned by the convert API.
type ConvertResponse struct {
	Markup string `json:"markup"`
	HTML   string `json:"html"`
}

// API groups the JSON endpoints for programmatic callers.
type API struct {
	maxBody int64
}

// NewAPI creates the API handler group.
func NewAPI(maxBody int64) *API {
	return &API{maxBody: maxBody}
}

// Convert decodes a Document from the request body and returns both
// conversion outputs.
func (a *API) Convert(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.maxBody)

	var doc models.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "request body too large"})
			return
		}
		slog.Debug("convert: invalid body", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON document"})
		return
	}

	if msg := validateDocument(doc); msg != "" {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": msg})
		return
	}

	res := markup.Convert(doc)
	writeJSON(w, http.StatusOK, ConvertResponse{
		Markup: res.Markup,
		HTML:   string(res.Fragment.HTML()),
	})
}

// writeJSON encodes data as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
