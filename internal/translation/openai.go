package translation

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIEngine translates words with an OpenAI chat completion.
type OpenAIEngine struct {
	apiKey string
	model  string
	client *openai.Client
}

// NewOpenAIEngine creates an OpenAI-backed engine.
func NewOpenAIEngine(cfg *EngineConfig) *OpenAIEngine {
	model := cfg.OpenAIModel
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIEngine{
		apiKey: cfg.OpenAIKey,
		model:  model,
		client: openai.NewClient(cfg.OpenAIKey),
	}
}

// Name returns the engine name.
func (e *OpenAIEngine) Name() string { return "openai" }

// IsAvailable checks that an API key is configured.
func (e *OpenAIEngine) IsAvailable() error {
	if e.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found")
	}
	return nil
}

// Translate asks the chat model for a line-by-line translation of text.
func (e *OpenAIEngine) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if e.apiKey == "" {
		return "", fmt.Errorf("OpenAI API key not found")
	}

	req := openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: translationPrompt(text, sourceLang, targetLang),
			},
		},
		Temperature: 0.3,
	}

	resp, err := e.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no translation returned")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
