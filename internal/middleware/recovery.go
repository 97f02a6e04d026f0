// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strings"
)

// Recoverer turns a panic in a downstream handler into a 500 that carries
// the request ID, so a user can quote it and the matching log line is easy
// to find. API callers get a JSON error body, everyone else plain text.
// http.ErrAbortHandler is re-raised untouched. Recoverer must be mounted
// after RequestID.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			id := RequestIDFromCtx(r.Context())
			slog.Error("panic recovered",
				"error", rec,
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", id,
				"stack", string(debug.Stack()),
			)
			writePanicResponse(w, r, id)
		}()

		next.ServeHTTP(w, r)
	})
}

// writePanicResponse answers 500 in the format the caller expects.
func writePanicResponse(w http.ResponseWriter, r *http.Request, id string) {
	if wantsJSON(r) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{
			"error":      "internal server error",
			"request_id": id,
		})
		return
	}

	msg := "Internal Server Error"
	if id != "" {
		msg = fmt.Sprintf("Internal Server Error (request %s)", id)
	}
	http.Error(w, msg, http.StatusInternalServerError)
}

// wantsJSON reports whether the request targets the JSON API.
func wantsJSON(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/") ||
		strings.Contains(r.Header.Get("Accept"), "application/json")
}
