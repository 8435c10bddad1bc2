package translation

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

// DefaultChunkSize is the number of words sent to an engine per request.
const DefaultChunkSize = 100

// Config tunes the adapter around an engine.
type Config struct {
	SourceLang string // "auto" detects the source language
	TargetLang string

	ChunkSize  int           // words per engine request (default 100)
	Attempts   int           // tries per chunk (default 2)
	RetryWait  time.Duration // pause between tries (0 = none)
	ChunkDelay time.Duration // pause between chunks in sequential mode (0 = none)
	Jobs       int           // >1 translates chunks on a bounded worker pool
}

// Adapter turns per-word translation into resilient chunked engine calls.
// Failures degrade to the original words and are logged; they never abort a
// batch.
type Adapter struct {
	engine  Engine
	cfg     Config
	cache   *Cache
	breaker *gobreaker.CircuitBreaker
}

// NewAdapter wraps engine with chunking, retry, caching and a circuit
// breaker that trips after repeated consecutive failures.
func NewAdapter(engine Engine, cfg Config) *Adapter {
	if cfg.SourceLang == "" {
		cfg.SourceLang = "auto"
	}
	if cfg.TargetLang == "" {
		cfg.TargetLang = "en"
	}
	if cfg.ChunkSize <= 0 {
		cfg.ChunkSize = DefaultChunkSize
	}
	if cfg.Attempts <= 0 {
		cfg.Attempts = 2
	}
	if cfg.Jobs <= 0 {
		cfg.Jobs = 1
	}

	return &Adapter{
		engine: engine,
		cfg:    cfg,
		cache:  NewCache(),
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "translation",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 3
			},
		}),
	}
}

// Cache exposes the adapter's translation cache.
func (a *Adapter) Cache() *Cache { return a.cache }

// TranslateWord translates a single word, falling back to the word itself
// when the engine fails.
func (a *Adapter) TranslateWord(ctx context.Context, word string) string {
	if translation, ok := a.cache.Get(word); ok {
		return translation
	}
	return a.translateChunk(ctx, []string{word})[0]
}

// TranslateWords translates words best-effort: every word gets an entry in
// the returned map, and words the engine could not translate map to
// themselves. The returned error is only ever the context's error.
func (a *Adapter) TranslateWords(ctx context.Context, words []string) (map[string]string, error) {
	result := make(map[string]string, len(words))

	// Serve repeats and previously translated words from the cache.
	var pending []string
	for _, word := range words {
		if translation, ok := a.cache.Get(word); ok {
			result[word] = translation
			continue
		}
		if _, queued := result[word]; queued {
			continue
		}
		result[word] = word // fallback until a translation lands
		pending = append(pending, word)
	}
	if len(pending) == 0 {
		return result, ctx.Err()
	}

	chunks := chunkWords(pending, a.cfg.ChunkSize)

	var translated [][]string
	if a.cfg.Jobs > 1 && len(chunks) > 1 {
		translated = a.translateParallel(ctx, chunks)
	} else {
		translated = a.translateSequential(ctx, chunks)
	}

	for i, chunk := range chunks {
		for j, word := range chunk {
			result[word] = translated[i][j]
		}
	}
	return result, ctx.Err()
}

func (a *Adapter) translateSequential(ctx context.Context, chunks [][]string) [][]string {
	translated := make([][]string, len(chunks))
	for i, chunk := range chunks {
		if ctx.Err() != nil {
			translated[i] = fallbackChunk(chunk)
			continue
		}
		if i > 0 && a.cfg.ChunkDelay > 0 {
			select {
			case <-time.After(a.cfg.ChunkDelay):
			case <-ctx.Done():
				translated[i] = fallbackChunk(chunk)
				continue
			}
		}
		if len(chunks) > 1 {
			fmt.Printf("  Translating chunk %d/%d (%d words)...\n", i+1, len(chunks), len(chunk))
		}
		translated[i] = a.translateChunk(ctx, chunk)
	}
	return translated
}

// translateParallel runs chunks on a bounded worker pool, keeping results in
// chunk order.
func (a *Adapter) translateParallel(ctx context.Context, chunks [][]string) [][]string {
	translated := make([][]string, len(chunks))
	sem := make(chan struct{}, a.cfg.Jobs)
	var wg sync.WaitGroup

	for i, chunk := range chunks {
		wg.Add(1)
		go func(i int, chunk []string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			translated[i] = a.translateChunk(ctx, chunk)
		}(i, chunk)
	}

	wg.Wait()
	return translated
}

// translateChunk translates one chunk through the breaker with retries. It
// always returns exactly one translation per word; on failure the words
// translate to themselves.
func (a *Adapter) translateChunk(ctx context.Context, chunk []string) []string {
	joined := strings.Join(chunk, "\n")

	var response string
	var err error
	for attempt := 0; attempt < a.cfg.Attempts; attempt++ {
		if attempt > 0 {
			fmt.Fprintf(os.Stderr, "Translation attempt %d failed: %v. Retrying...\n", attempt, err)
			if a.cfg.RetryWait > 0 {
				select {
				case <-time.After(a.cfg.RetryWait):
				case <-ctx.Done():
					return fallbackChunk(chunk)
				}
			}
		}

		response, err = a.callEngine(ctx, joined)
		if err == nil {
			break
		}
		if ctx.Err() != nil || errors.Is(err, gobreaker.ErrOpenState) {
			break
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Translation failed for %d words, keeping originals: %v\n", len(chunk), err)
		return fallbackChunk(chunk)
	}

	translations := splitTranslations(response, len(chunk))
	for i, word := range chunk {
		if translations[i] == "" {
			translations[i] = word
			continue
		}
		a.cache.Add(word, translations[i])
	}
	return translations
}

func (a *Adapter) callEngine(ctx context.Context, text string) (string, error) {
	out, err := a.breaker.Execute(func() (interface{}, error) {
		return a.engine.Translate(ctx, text, a.cfg.SourceLang, a.cfg.TargetLang)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

// splitTranslations aligns an engine response with the words that were
// sent. Extra lines are dropped and missing lines stay empty for the caller
// to backfill with the original words.
func splitTranslations(response string, want int) []string {
	lines := strings.Split(response, "\n")
	out := make([]string, want)
	for i := 0; i < want && i < len(lines); i++ {
		out[i] = strings.TrimSpace(lines[i])
	}
	return out
}

func fallbackChunk(chunk []string) []string {
	out := make([]string, len(chunk))
	copy(out, chunk)
	return out
}

func chunkWords(words []string, size int) [][]string {
	var chunks [][]string
	for i := 0; i < len(words); i += size {
		end := i + size
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, words[i:end])
	}
	return chunks
}
