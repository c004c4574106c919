// Package llm provides a minimal HTTP client for OpenAI-compatible chat
// completion APIs. It satisfies the changelog package's TextGenerator
// interface. The client applies the configured request timeout but never
// retries: a failed generation surfaces to the caller unchanged.
package llm

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

// DefaultBaseURL targets the OpenAI API; any compatible endpoint works.
const DefaultBaseURL = "https://api.openai.com/v1"

// Options configures a Client. Unset fields fall back to the documented
// defaults in applyDefaults; Timeout has no default because zero already
// carries a meaning.
type Options struct {
	// BaseURL of the chat completions API. Default: DefaultBaseURL.
	BaseURL string
	// Model identifier. Default: "gpt-4o-mini".
	Model string
	// APIKeyEnv names the environment variable holding the API key.
	// Default: "OPENAI_API_KEY".
	APIKeyEnv string
	// Temperature for sampling. Nil falls back to 0.3; an explicit zero is
	// sent as zero (deterministic sampling).
	Temperature *float64
	// MaxTokens caps the completion length. Default: 1200.
	MaxTokens int
	// Timeout bounds the whole HTTP exchange. Zero disables the client
	// timeout.
	Timeout time.Duration
}

func (o *Options) applyDefaults() {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.Model == "" {
		o.Model = "gpt-4o-mini"
	}
	if o.APIKeyEnv == "" {
		o.APIKeyEnv = "OPENAI_API_KEY"
	}
	if o.Temperature == nil {
		t := 0.3
		o.Temperature = &t
	}
	if o.MaxTokens == 0 {
		o.MaxTokens = 1200
	}
}

// Client calls an OpenAI-compatible chat completions endpoint.
type Client struct {
	baseURL     string
	model       string
	apiKey      string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
}

// NewClient builds a client from options, reading the API key from the
// configured environment variable. A missing key is an error: every use of
// this client needs authentication.
func NewClient(opts Options) (*Client, error) {
	opts.applyDefaults()

	key := os.Getenv(opts.APIKeyEnv)
	if key == "" {
		return nil, fmt.Errorf("%s is not set", opts.APIKeyEnv)
	}

	return &Client{
		baseURL:     opts.BaseURL,
		model:       opts.Model,
		apiKey:      key,
		temperature: *opts.Temperature,
		maxTokens:   opts.MaxTokens,
		httpClient:  &http.Client{Timeout: opts.Timeout},
	}, nil
}

// Generate sends the system and user prompts to the chat completions
// endpoint and returns the generated text content.
func (c *Client) Generate(systemPrompt, userPrompt string) (string, error) {
	payload := map[string]any{
		"model": c.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
		"temperature": c.temperature,
		"max_tokens":  c.maxTokens,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling chat request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling text-generation service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("text-generation service responded with status %s", resp.Status)
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decoding chat response: %w", err)
	}

	if len(parsed.Choices) == 0 {
		return "", errors.New("text-generation service returned no choices")
	}

	return parsed.Choices[0].Message.Content, nil
}
