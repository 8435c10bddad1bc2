package translation

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiEngine translates words with a Google Gemini model.
type GeminiEngine struct {
	apiKey string
	model  string
	client *genai.Client
}

// NewGeminiEngine creates a Gemini-backed engine.
func NewGeminiEngine(cfg *EngineConfig) (*GeminiEngine, error) {
	model := cfg.GeminiModel
	if model == "" {
		model = "gemini-2.5-flash"
	}

	engine := &GeminiEngine{
		apiKey: cfg.GeminiKey,
		model:  model,
	}
	if cfg.GeminiKey == "" {
		// Leave the client unset; IsAvailable and Translate report the
		// missing key.
		return engine, nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.GeminiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	engine.client = client
	return engine, nil
}

// Name returns the engine name.
func (e *GeminiEngine) Name() string { return "gemini" }

// IsAvailable checks that an API key is configured.
func (e *GeminiEngine) IsAvailable() error {
	if e.apiKey == "" {
		return fmt.Errorf("Gemini API key not found")
	}
	return nil
}

// Translate asks the Gemini model for a line-by-line translation of text.
func (e *GeminiEngine) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if e.apiKey == "" {
		return "", fmt.Errorf("Gemini API key not found")
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.model,
		genai.Text(translationPrompt(text, sourceLang, targetLang)), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini API error: %w", err)
	}

	translated := strings.TrimSpace(resp.Text())
	if translated == "" {
		return "", fmt.Errorf("no translation returned")
	}
	return translated, nil
}
