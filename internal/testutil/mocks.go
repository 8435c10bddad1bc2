package testutil

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// MockEngine mocks a translation engine. It translates each newline
// separated word independently, so it slots in wherever chunked requests
// are made. The zero value is ready to use.
type MockEngine struct {
	mu           sync.Mutex
	Translations map[string]string // per-word translations
	Errors       map[string]error  // per-word errors, failing the whole request
	Err          error             // blanket error
	ErrUntil     int               // with Err set: fail only the first ErrUntil calls (0 = always)
	Unavailable  error             // returned by IsAvailable
	Calls        []string          // texts passed to Translate
	LastSource   string            // sourceLang of the most recent call
	LastTarget   string            // targetLang of the most recent call
}

// Translate mocks translating newline separated words
func (m *MockEngine) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, text)
	m.LastSource = sourceLang
	m.LastTarget = targetLang
	call := len(m.Calls)
	m.mu.Unlock()

	if m.Err != nil && (m.ErrUntil == 0 || call <= m.ErrUntil) {
		return "", m.Err
	}

	words := strings.Split(text, "\n")
	translated := make([]string, len(words))
	for i, word := range words {
		if err, ok := m.Errors[word]; ok {
			return "", err
		}
		if translation, ok := m.Translations[word]; ok {
			translated[i] = translation
			continue
		}

		// Default mock translation
		translated[i] = fmt.Sprintf("mock translation of %s", word)
	}

	return strings.Join(translated, "\n"), nil
}

// Name returns the engine name
func (m *MockEngine) Name() string { return "mock" }

// IsAvailable mocks the availability check
func (m *MockEngine) IsAvailable() error { return m.Unavailable }

// CallCount returns how many times Translate was called
func (m *MockEngine) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
