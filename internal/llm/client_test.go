// Package llm tests the chat completions client against a local HTTP stub.
// Related: internal/llm/client.go
// Tags: llm, http, generation

package llm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyEnv = "RELKIT_TEST_API_KEY"

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	t.Setenv(testKeyEnv, "test-key")

	client, err := NewClient(Options{BaseURL: baseURL, APIKeyEnv: testKeyEnv})
	require.NoError(t, err)
	return client
}

func completionResponse(content string) string {
	return `{"choices":[{"message":{"content":` + mustJSON(content) + `}}]}`
}

func mustJSON(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func TestNewClient_MissingKey(t *testing.T) {
	t.Setenv(testKeyEnv, "")

	_, err := NewClient(Options{APIKeyEnv: testKeyEnv})
	require.Error(t, err)
	assert.Contains(t, err.Error(), testKeyEnv)
}

func TestGenerate_Success(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionResponse("- Added X")))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	text, err := client.Generate("system prompt", "user prompt")
	require.NoError(t, err)
	assert.Equal(t, "- Added X", text)
	assert.Equal(t, "Bearer test-key", gotAuth)

	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	first := messages[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "system prompt", first["content"])
}

func TestGenerate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Generate("s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestGenerate_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Generate("s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestGenerate_CallsAreNotRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Generate("s", "u")
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()

	var opts Options
	opts.applyDefaults()

	assert.Equal(t, DefaultBaseURL, opts.BaseURL)
	assert.Equal(t, "gpt-4o-mini", opts.Model)
	assert.Equal(t, "OPENAI_API_KEY", opts.APIKeyEnv)
	require.NotNil(t, opts.Temperature)
	assert.InDelta(t, 0.3, *opts.Temperature, 0.0001)
	assert.Equal(t, 1200, opts.MaxTokens)
	assert.Zero(t, opts.Timeout)
}

func TestGenerate_ExplicitZeroTemperature(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(completionResponse("body")))
	}))
	defer server.Close()

	t.Setenv(testKeyEnv, "test-key")
	zero := 0.0
	client, err := NewClient(Options{BaseURL: server.URL, APIKeyEnv: testKeyEnv, Temperature: &zero})
	require.NoError(t, err)

	_, err = client.Generate("s", "u")
	require.NoError(t, err)
	assert.Equal(t, 0.0, gotBody["temperature"])
}

func TestNewClient_ZeroTimeoutMeansNoDeadline(t *testing.T) {
	t.Setenv(testKeyEnv, "test-key")

	client, err := NewClient(Options{APIKeyEnv: testKeyEnv, Timeout: 0})
	require.NoError(t, err)
	assert.Zero(t, client.httpClient.Timeout)
}
