package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"codeberg.org/snonux/scriptvocab/internal/output"
	"codeberg.org/snonux/scriptvocab/internal/testutil"
)

func postForm(t *testing.T, handler http.Handler, values url.Values) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/translate", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeEntries(t *testing.T, rec *httptest.ResponseRecorder) []output.JSONEntry {
	t.Helper()

	var entries []output.JSONEntry
	if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
		t.Fatalf("Response is not valid JSON: %v\nBody: %s", err, rec.Body.String())
	}
	return entries
}

func TestTranslate_TextForm(t *testing.T) {
	engine := &testutil.MockEngine{
		Translations: map[string]string{"котка": "cat", "куче": "dog"},
	}
	handler := New(engine, 1, "en").Handler()

	rec := postForm(t, handler, url.Values{
		"text": {"котка котка куче"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/json") {
		t.Errorf("Expected JSON content type, got %q", ct)
	}

	entries := decodeEntries(t, rec)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].OriginalText != "котка" || entries[0].Occurrences != 2 || entries[0].TranslatedText != "cat" {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
	if entries[1].OriginalText != "куче" || entries[1].Occurrences != 1 {
		t.Errorf("Unexpected second entry: %+v", entries[1])
	}
}

func TestTranslate_TargetLanguage(t *testing.T) {
	engine := &testutil.MockEngine{}
	handler := New(engine, 1, "de").Handler()

	// The server default applies when the form omits target_language
	postForm(t, handler, url.Values{"text": {"hallo hallo"}})
	if engine.LastTarget != "de" {
		t.Errorf("Expected default target language de, got %q", engine.LastTarget)
	}

	// An explicit form value wins over the server default
	postForm(t, handler, url.Values{
		"text":            {"hallo hallo"},
		"target_language": {"fr"},
	})
	if engine.LastTarget != "fr" {
		t.Errorf("Expected target language fr, got %q", engine.LastTarget)
	}
}

func TestTranslate_DefaultMinWordSize(t *testing.T) {
	handler := New(&testutil.MockEngine{}, 1, "en").Handler()

	// min_word_size defaults to 2, dropping single-letter words however
	// often they appear
	rec := postForm(t, handler, url.Values{
		"text": {"a a a hello hello"},
	})

	entries := decodeEntries(t, rec)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d: %+v", len(entries), entries)
	}
	if entries[0].OriginalText != "hello" || entries[0].Occurrences != 2 {
		t.Errorf("Unexpected entry: %+v", entries[0])
	}
}

func TestTranslate_Thresholds(t *testing.T) {
	handler := New(&testutil.MockEngine{}, 1, "en").Handler()

	rec := postForm(t, handler, url.Values{
		"text":           {"cat cat cat dog dog bird"},
		"min_word_size":  {"3"},
		"min_appearance": {"2"},
	})

	entries := decodeEntries(t, rec)
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %+v", len(entries), entries)
	}
	if entries[0].OriginalText != "cat" || entries[0].Occurrences != 3 {
		t.Errorf("Unexpected first entry: %+v", entries[0])
	}
	if entries[1].OriginalText != "dog" || entries[1].Occurrences != 2 {
		t.Errorf("Unexpected second entry: %+v", entries[1])
	}
}

func TestTranslate_FileUpload(t *testing.T) {
	handler := New(&testutil.MockEngine{}, 1, "en").Handler()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "episode.srt")
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	fw.Write([]byte(testutil.SRTFromLines("Hello world", "Hello again")))

	// The uploaded file wins over the text field
	mw.WriteField("text", "zzz zzz zzz")
	mw.WriteField("min_appearance", "2")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/translate", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	entries := decodeEntries(t, rec)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d: %+v", len(entries), entries)
	}
	if entries[0].OriginalText != "hello" {
		t.Errorf("Expected vocabulary from the uploaded file, got: %+v", entries[0])
	}
}

func TestTranslate_NoInput(t *testing.T) {
	handler := New(&testutil.MockEngine{}, 1, "en").Handler()

	rec := postForm(t, handler, url.Values{})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Error response is not valid JSON: %v", err)
	}
	if body["error"] != "no text or file provided" {
		t.Errorf("Unexpected error message: %q", body["error"])
	}
}

func TestTranslate_BadParameter(t *testing.T) {
	handler := New(&testutil.MockEngine{}, 1, "en").Handler()

	rec := postForm(t, handler, url.Values{
		"text":          {"hello world"},
		"min_word_size": {"lots"},
	})

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "min_word_size") {
		t.Errorf("Expected error to name the parameter, got: %s", rec.Body.String())
	}
}

func TestTranslate_MethodNotAllowed(t *testing.T) {
	handler := New(&testutil.MockEngine{}, 1, "en").Handler()

	req := httptest.NewRequest(http.MethodGet, "/translate", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("Expected status 405, got %d", rec.Code)
	}
}

func TestTranslate_CORS(t *testing.T) {
	handler := New(&testutil.MockEngine{}, 1, "en").Handler()

	// Preflight
	req := httptest.NewRequest(http.MethodOptions, "/translate", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204 for preflight, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected allow-all CORS origin header")
	}

	// Normal requests carry the header too
	rec = postForm(t, handler, url.Values{"text": {"hello hello"}})
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected CORS header on POST response")
	}
}

func TestTranslate_EmptyVocabulary(t *testing.T) {
	handler := New(&testutil.MockEngine{}, 1, "en").Handler()

	// Every word is shorter than the default min_word_size
	rec := postForm(t, handler, url.Values{
		"text": {"a b c a"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != "[]\n" {
		t.Errorf("Expected empty array, got %q", rec.Body.String())
	}
}

func TestTranslate_EngineFailure(t *testing.T) {
	engine := &testutil.MockEngine{Err: errors.New("service down")}
	handler := New(engine, 1, "en").Handler()

	rec := postForm(t, handler, url.Values{
		"text": {"котка котка"},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	// Untranslated words keep their original form
	entries := decodeEntries(t, rec)
	if len(entries) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(entries))
	}
	if entries[0].TranslatedText != "котка" {
		t.Errorf("Expected fallback to original word, got %q", entries[0].TranslatedText)
	}
}
