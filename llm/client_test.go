package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/peterldowns/testy/check"
)

func TestClient_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		check.Equal(t, http.MethodPost, r.Method)
		check.Equal(t, "/chat/completions", r.URL.Path)
		check.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatCompletionRequest
		check.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		check.Equal(t, 1, len(req.Messages))
		check.Equal(t, "user", req.Messages[0].Role)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"bid\": 0.6}"}}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL), WithModel("test-model"))

	out, err := client.Generate(context.Background(), "place a bid")

	check.NoError(t, err)
	check.Equal(t, `{"bid": 0.6}`, out)
}

func TestClient_GenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "rate limited"}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.Generate(context.Background(), "place a bid")
	check.Error(t, err)
}

func TestClient_GenerateEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.Generate(context.Background(), "place a bid")
	check.Error(t, err)
}
