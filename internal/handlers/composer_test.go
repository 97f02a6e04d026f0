// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"

	"suggestpress/internal/models"
	"suggestpress/internal/render"
)

// testComposer returns a Composer wired to the real embedded templates.
func testComposer(t *testing.T) *Composer {
	t.Helper()
	rn, err := render.New(false)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return NewComposer(rn, template.HTML("<p>help</p>"), 1<<20)
}

// postForm builds a form-encoded POST request.
func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestComposerForm(t *testing.T) {
	c := testComposer(t)

	w := httptest.NewRecorder()
	c.Form(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	body := w.Body.String()
	if strings.Count(body, `class="suggestion-block"`) != 1 {
		t.Error("empty form should start with exactly one block")
	}
	if !strings.Contains(body, "Start typing") {
		t.Error("empty form should show the preview placeholder")
	}
	if !strings.Contains(body, "<p>help</p>") {
		t.Error("form should include the help panel")
	}
}

func TestComposerExample(t *testing.T) {
	c := testComposer(t)

	w := httptest.NewRecorder()
	c.Example(w, httptest.NewRequest(http.MethodGet, "/example", nil))

	body := w.Body.String()
	if strings.Count(body, `class="suggestion-block"`) != 3 {
		t.Error("example should render three blocks")
	}
	if !strings.Contains(body, "__**➤ General Game Improvement Suggestions**__") {
		t.Error("example should pre-render the markup")
	}
	if !strings.Contains(body, "<u><strong>Endless Dungeon</strong></u>") {
		t.Error("example preview should translate inline tokens")
	}
}

func TestComposerPreview(t *testing.T) {
	c := testComposer(t)

	form := url.Values{
		fieldTitle:            {"T"},
		fieldSubtitle:         {""},
		fieldBlockTitle:       {"B", ""},
		fieldBlockDescription: {"", "hidden"},
		fieldBlockItems:       {"a\r\n\r\n• b\r\nc", "x"},
		fieldBlockEmphasis:    {"**E**", ""},
	}

	w := httptest.NewRecorder()
	c.Preview(w, postForm("/preview", form))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	body := w.Body.String()

	wantHTML := "<p><strong><u>➤ T</u></strong></p>" +
		"<blockquote><strong>➤ B</strong><br>• a<br>• b<br>• c<br><em><strong>E</strong></em></blockquote>"
	if !strings.Contains(body, wantHTML) {
		t.Errorf("preview HTML missing, body:\n%s", body)
	}

	wantMarkup := "__**➤ T**__\n\n&gt; **➤ B**\n&gt; • a\n&gt; • b\n&gt; • c\n&gt; _**E**_"
	if !strings.Contains(body, wantMarkup) {
		t.Errorf("markup textarea missing, body:\n%s", body)
	}
	if strings.Contains(body, "hidden") {
		t.Error("untitled block leaked into the preview")
	}
}

func TestComposerPreviewEmpty(t *testing.T) {
	c := testComposer(t)

	w := httptest.NewRecorder()
	c.Preview(w, postForm("/preview", url.Values{}))

	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Start typing") {
		t.Error("empty form should produce the placeholder")
	}
}

func TestComposerPreviewTooLarge(t *testing.T) {
	rn, err := render.New(false)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	c := NewComposer(rn, "", 16)

	w := httptest.NewRecorder()
	c.Preview(w, postForm("/preview", url.Values{fieldTitle: {strings.Repeat("x", 100)}}))

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status: got %d, want 413", w.Code)
	}
}

func TestComposerPreviewInvalid(t *testing.T) {
	c := testComposer(t)

	w := httptest.NewRecorder()
	c.Preview(w, postForm("/preview", url.Values{fieldTitle: {strings.Repeat("x", 301)}}))

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status: got %d, want 422", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Title is too long") {
		t.Errorf("body should explain the problem, got %q", w.Body.String())
	}
}

func TestComposerNewBlock(t *testing.T) {
	c := testComposer(t)

	first := httptest.NewRecorder()
	c.NewBlock(first, httptest.NewRequest(http.MethodGet, "/blocks/new", nil))
	second := httptest.NewRecorder()
	c.NewBlock(second, httptest.NewRequest(http.MethodGet, "/blocks/new", nil))

	if first.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", first.Code)
	}
	for _, name := range []string{fieldBlockTitle, fieldBlockDescription, fieldBlockItems, fieldBlockEmphasis} {
		if !strings.Contains(first.Body.String(), `name="`+name+`"`) {
			t.Errorf("block partial should contain field %q", name)
		}
	}
	if first.Body.String() == second.Body.String() {
		t.Error("each new block should get its own id")
	}
}

func TestDocumentFromForm(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
		want models.Document
	}{
		{
			name: "empty",
			form: url.Values{},
			want: models.Document{},
		},
		{
			name: "positional blocks",
			form: url.Values{
				fieldTitle:            {"T"},
				fieldBlockTitle:       {"A", "B"},
				fieldBlockDescription: {"da", "db"},
				fieldBlockItems:       {"ia", "ib"},
				fieldBlockEmphasis:    {"ea", "eb"},
			},
			want: models.Document{Title: "T", Blocks: []models.SuggestionBlock{
				{Title: "A", Description: "da", Items: "ia", Emphasis: "ea"},
				{Title: "B", Description: "db", Items: "ib", Emphasis: "eb"},
			}},
		},
		{
			name: "missing fields are empty",
			form: url.Values{
				fieldBlockTitle: {"A", "B"},
				fieldBlockItems: {"ia"},
			},
			want: models.Document{Blocks: []models.SuggestionBlock{
				{Title: "A", Items: "ia"},
				{Title: "B"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := documentFromForm(tt.form)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAPIConvert(t *testing.T) {
	api := NewAPI(1 << 20)

	t.Run("valid document", func(t *testing.T) {
		body, _ := json.Marshal(models.Document{
			Title:  "T",
			Blocks: []models.SuggestionBlock{{Title: "B", Items: "a\n\n• b\nc"}},
		})
		w := httptest.NewRecorder()
		api.Convert(w, httptest.NewRequest(http.MethodPost, "/api/convert", bytes.NewReader(body)))

		if w.Code != http.StatusOK {
			t.Fatalf("status: got %d, want 200", w.Code)
		}
		var resp ConvertResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		wantMarkup := "__**➤ T**__\n\n> **➤ B**\n> • a\n> • b\n> • c"
		if resp.Markup != wantMarkup {
			t.Errorf("markup: got %q, want %q", resp.Markup, wantMarkup)
		}
		wantHTML := "<p><strong><u>➤ T</u></strong></p><blockquote><strong>➤ B</strong><br>• a<br>• b<br>• c</blockquote>"
		if resp.HTML != wantHTML {
			t.Errorf("html: got %q, want %q", resp.HTML, wantHTML)
		}
	})

	t.Run("empty document", func(t *testing.T) {
		w := httptest.NewRecorder()
		api.Convert(w, httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(`{}`)))

		var resp ConvertResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Markup != "" || resp.HTML != "" {
			t.Errorf("expected empty outputs, got %+v", resp)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		w := httptest.NewRecorder()
		api.Convert(w, httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(`{"title":`)))

		if w.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want 400", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
			t.Errorf("content-type: got %q", ct)
		}
	})

	t.Run("body too large", func(t *testing.T) {
		small := NewAPI(8)
		w := httptest.NewRecorder()
		small.Convert(w, httptest.NewRequest(http.MethodPost, "/api/convert", strings.NewReader(`{"title":"much too long"}`)))

		if w.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("status: got %d, want 413", w.Code)
		}
	})

	t.Run("invalid document", func(t *testing.T) {
		body, _ := json.Marshal(models.Document{Blocks: make([]models.SuggestionBlock, 51)})
		w := httptest.NewRecorder()
		api.Convert(w, httptest.NewRequest(http.MethodPost, "/api/convert", bytes.NewReader(body)))

		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("status: got %d, want 422", w.Code)
		}
		var resp map[string]string
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp["error"] == "" {
			t.Error("expected an error message")
		}
	})
}
