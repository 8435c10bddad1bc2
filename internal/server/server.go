// Package server exposes the vocabulary pipeline as an HTTP endpoint.
//
// POST /translate accepts form fields (text or a file upload, languages and
// filter thresholds) and responds with the translated vocabulary as JSON.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"codeberg.org/snonux/scriptvocab/internal/frequency"
	"codeberg.org/snonux/scriptvocab/internal/output"
	"codeberg.org/snonux/scriptvocab/internal/subtitle"
	"codeberg.org/snonux/scriptvocab/internal/tokenizer"
	"codeberg.org/snonux/scriptvocab/internal/translation"
)

const maxUploadSize = 32 << 20 // 32 MiB

// Server handles vocabulary extraction requests. Each request runs the
// pipeline with its own language pair, so translations are cached per
// request, not across them.
type Server struct {
	engine translation.Engine
	jobs   int
	target string // target language when the form omits one
}

// New creates a Server translating through engine. jobs bounds the number
// of parallel translation requests per extraction and targetLang is the
// target language used when a request does not name one.
func New(engine translation.Engine, jobs int, targetLang string) *Server {
	if jobs < 1 {
		jobs = 1
	}
	if targetLang == "" {
		targetLang = "en"
	}
	return &Server{
		engine: engine,
		jobs:   jobs,
		target: targetLang,
	}
}

// Handler returns the server's HTTP handler with CORS enabled for all
// origins.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/translate", s.handleTranslate)
	return withCORS(mux)
}

// Run starts the HTTP server on addr and blocks until ctx is cancelled or
// the listener fails.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	fmt.Printf("Listening on %s\n", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleTranslate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil && err != http.ErrNotMultipart {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid form: %v", err))
		return
	}

	// An uploaded file takes precedence over the text field
	text := r.FormValue("text")
	if file, _, err := r.FormFile("file"); err == nil {
		defer file.Close()
		content, err := io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("failed to read upload: %v", err))
			return
		}
		text = string(content)
	}

	subsLanguage := formValue(r, "subs_language", "auto")
	targetLanguage := formValue(r, "target_language", s.target)
	minWordSize, err := formInt(r, "min_word_size", 2)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	minAppearance, err := formInt(r, "min_appearance", 1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	fmt.Printf("Config %s %s %d %d\n", subsLanguage, targetLanguage, minWordSize, minAppearance)

	if text == "" {
		writeError(w, http.StatusBadRequest, "no text or file provided")
		return
	}

	entries := s.extract(r.Context(), text, subsLanguage, targetLanguage, minWordSize, minAppearance)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := output.WriteJSON(w, entries); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing response: %v\n", err)
	}
}

// extract runs the vocabulary pipeline over text and returns the translated
// entries, most frequent first.
func (s *Server) extract(ctx context.Context, text, sourceLang, targetLang string, minWordSize, minAppearance int) []output.Entry {
	table := frequency.Collect(tokenizer.Tokens(subtitle.Clean(text)))

	ranked := table.Ranked(minWordSize, minAppearance)
	words := make([]string, len(ranked))
	for i, entry := range ranked {
		words[i] = entry.Word
	}

	adapter := translation.NewAdapter(s.engine, translation.Config{
		SourceLang: sourceLang,
		TargetLang: targetLang,
		Attempts:   2,
		RetryWait:  2 * time.Second,
		ChunkDelay: 2 * time.Second,
		Jobs:       s.jobs,
	})

	translations, err := adapter.TranslateWords(ctx, words)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: translation cancelled: %v\n", err)
	}

	entries := make([]output.Entry, len(ranked))
	for i, entry := range ranked {
		entries[i] = output.Entry{
			Word:        entry.Word,
			Translation: translations[entry.Word],
			Count:       entry.Count,
		}
	}
	return entries
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "*")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func formValue(r *http.Request, name, def string) string {
	if v := r.FormValue(name); v != "" {
		return v
	}
	return def
}

func formInt(r *http.Request, name string, def int) (int, error) {
	v := r.FormValue(name)
	if v == "" {
		return def, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", name, v)
	}
	return n, nil
}
