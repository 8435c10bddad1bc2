package translation

import (
	"context"
	"fmt"
	"time"
)

// Engine is the narrow translation capability the rest of the pipeline
// depends on. Implementations wrap one external service each.
type Engine interface {
	// Translate translates text from sourceLang ("auto" to detect) into
	// targetLang. text may span multiple newline-separated lines and the
	// line structure must be preserved in the result.
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)

	// Name returns the engine name.
	Name() string

	// IsAvailable checks if the engine is configured and reachable.
	IsAvailable() error
}

// EngineConfig selects and configures a translation engine.
type EngineConfig struct {
	Engine string // "google", "openai" or "gemini"

	// OpenAI settings
	OpenAIKey   string
	OpenAIModel string

	// Gemini settings
	GeminiKey   string
	GeminiModel string

	HTTPTimeout time.Duration
}

// DefaultEngineConfig returns the default configuration: the keyless Google
// web endpoint.
func DefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		Engine:      "google",
		HTTPTimeout: 30 * time.Second,
	}
}

// NewEngine creates the translation engine named by the configuration. An
// unknown engine name is a configuration error; a missing API key is not,
// it surfaces through IsAvailable and the per-word fallback instead.
func NewEngine(cfg *EngineConfig) (Engine, error) {
	if cfg == nil {
		cfg = DefaultEngineConfig()
	}

	switch cfg.Engine {
	case "", "google":
		return NewGoogleEngine(cfg), nil
	case "openai":
		return NewOpenAIEngine(cfg), nil
	case "gemini":
		return NewGeminiEngine(cfg)
	default:
		return nil, fmt.Errorf("unknown translation engine: %s", cfg.Engine)
	}
}

// EngineNames lists the engines NewEngine knows, in display order.
func EngineNames() []string {
	return []string{"google", "openai", "gemini"}
}

// ListEngines prints each engine with its availability under the current
// configuration.
func ListEngines(cfg *EngineConfig) error {
	if cfg == nil {
		cfg = DefaultEngineConfig()
	}

	fmt.Println("Available translation engines:")
	for _, name := range EngineNames() {
		engCfg := *cfg
		engCfg.Engine = name

		engine, err := NewEngine(&engCfg)
		if err == nil {
			err = engine.IsAvailable()
		}
		if err != nil {
			fmt.Printf("  %-8s not available: %v\n", name, err)
			continue
		}
		fmt.Printf("  %-8s ready\n", name)
	}

	return nil
}

// translationPrompt is shared by the chat-based engines.
func translationPrompt(text, sourceLang, targetLang string) string {
	source := fmt.Sprintf("the language '%s'", sourceLang)
	if sourceLang == "" || sourceLang == "auto" {
		source = "their original language"
	}
	return fmt.Sprintf("Translate the following lines from %s to the language '%s'. Respond with only the translations, one per line, in the same order, nothing else.\n\n%s",
		source, targetLang, text)
}
