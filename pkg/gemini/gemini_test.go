package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"morning-assistant/pkg/gemini"
)

// wireRequest mirrors the request body sent to the generateContent endpoint.
type wireRequest struct {
	SystemInstruction *struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"system_instruction"`
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	SafetySettings []struct {
		Category  string `json:"category"`
		Threshold string `json:"threshold"`
	} `json:"safetySettings"`
	GenerationConfig *struct {
		Temperature     float64 `json:"temperature"`
		MaxOutputTokens int     `json:"maxOutputTokens"`
	} `json:"generationConfig"`
}

func TestConfig_Validate(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		cfg := gemini.Config{}
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected error for missing API key")
		}
	})

	t.Run("defaults filled", func(t *testing.T) {
		cfg := gemini.Config{APIKey: "test-api-key"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != gemini.DefaultModel {
			t.Errorf("expected default model %q, got %q", gemini.DefaultModel, cfg.Model)
		}
		if cfg.APIURL != gemini.DefaultAPIURL {
			t.Errorf("expected default API URL %q, got %q", gemini.DefaultAPIURL, cfg.APIURL)
		}
		if cfg.HTTPClient == nil {
			t.Errorf("expected default HTTP client")
		}
	})
}

func TestGenerateContent(t *testing.T) {
	var mu sync.Mutex
	var lastReq wireRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req wireRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		mu.Lock()
		lastReq = req
		mu.Unlock()

		// Read mock command
		text := req.Contents[0].Parts[0].Text
		if text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "mocked response string" }
						],
						"role": "model"
					}
				}
			],
			"usageMetadata": {
				"promptTokenCount": 7,
				"candidatesTokenCount": 3,
				"totalTokenCount": 10
			}
		}`))
	}))
	defer ts.Close()

	newClient := func(t *testing.T) gemini.IGemini {
		t.Helper()
		client, err := gemini.New(gemini.Config{
			APIKey: "test-api-key",
			APIURL: ts.URL,
		})
		if err != nil {
			t.Fatalf("failed to create client: %v", err)
		}
		return client
	}

	t.Run("success flow", func(t *testing.T) {
		client := newClient(t)

		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "Hello world"}}},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := resp.Text(); got != "mocked response string" {
			t.Errorf("unexpected content response: %s", got)
		}
		if resp.Usage == nil || resp.Usage.TotalTokens != 10 {
			t.Errorf("expected usage metadata to be mapped")
		}
	})

	t.Run("server error flow", func(t *testing.T) {
		client := newClient(t)

		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "cause_500"}}},
			},
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("safety settings always attached", func(t *testing.T) {
		client := newClient(t)

		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "Hello world"}}},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		mu.Lock()
		req := lastReq
		mu.Unlock()

		if len(req.SafetySettings) != 4 {
			t.Fatalf("expected 4 safety settings, got %d", len(req.SafetySettings))
		}
		for _, s := range req.SafetySettings {
			if s.Threshold != "BLOCK_MEDIUM_AND_ABOVE" {
				t.Errorf("unexpected threshold for %s: %s", s.Category, s.Threshold)
			}
		}
	})

	t.Run("system instruction and generation config propagated", func(t *testing.T) {
		client := newClient(t)

		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: &gemini.Content{
				Parts: []gemini.Part{{Text: "You are a morning routine assistant."}},
			},
			Messages: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "Hello world"}}},
			},
			Temperature: 0.7,
			MaxTokens:   256,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		mu.Lock()
		req := lastReq
		mu.Unlock()

		if req.SystemInstruction == nil || len(req.SystemInstruction.Parts) == 0 {
			t.Fatalf("expected system instruction in request body")
		}
		if req.SystemInstruction.Parts[0].Text != "You are a morning routine assistant." {
			t.Errorf("unexpected system instruction: %s", req.SystemInstruction.Parts[0].Text)
		}
		if req.GenerationConfig == nil {
			t.Fatalf("expected generation config in request body")
		}
		if req.GenerationConfig.MaxOutputTokens != 256 {
			t.Errorf("unexpected max tokens: %d", req.GenerationConfig.MaxOutputTokens)
		}
	})
}
