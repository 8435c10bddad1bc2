package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const googleEndpoint = "https://translate.googleapis.com/translate_a/single"

// GoogleEngine translates through the public Google Translate web endpoint.
// It needs no API key, which makes it the default engine.
type GoogleEngine struct {
	endpoint string
	client   *http.Client
}

// NewGoogleEngine creates a Google web endpoint engine.
func NewGoogleEngine(cfg *EngineConfig) *GoogleEngine {
	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GoogleEngine{
		endpoint: googleEndpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Name returns the engine name.
func (e *GoogleEngine) Name() string { return "google" }

// IsAvailable probes for internet reachability.
func (e *GoogleEngine) IsAvailable() error {
	conn, err := net.DialTimeout("tcp", "8.8.8.8:53", 2*time.Second)
	if err != nil {
		return fmt.Errorf("no internet connection: %w", err)
	}
	conn.Close()
	return nil
}

// Translate sends text to the endpoint and reassembles the translated
// segments from its response.
func (e *GoogleEngine) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if sourceLang == "" {
		sourceLang = "auto"
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", sourceLang)
	params.Set("tl", targetLang)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; scriptvocab)")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation service returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading translation response: %w", err)
	}

	return parseGoogleResponse(body)
}

// parseGoogleResponse extracts the translated text from the endpoint's
// nested array payload: [[["translated","original",...],...],...]
func parseGoogleResponse(body []byte) (string, error) {
	var payload []interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("parsing translation response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translation response")
	}

	segments, ok := payload[0].([]interface{})
	if !ok {
		return "", fmt.Errorf("unexpected translation response shape")
	}

	var sb strings.Builder
	for _, seg := range segments {
		parts, ok := seg.([]interface{})
		if !ok || len(parts) == 0 {
			continue
		}
		if s, ok := parts[0].(string); ok {
			sb.WriteString(s)
		}
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("no translation in response")
	}
	return sb.String(), nil
}
