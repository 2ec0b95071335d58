package youtube_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"morning-assistant/pkg/youtube"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

const searchResponse = `{
	"items": [
		{
			"id": { "kind": "youtube#video", "videoId": "abc123" },
			"snippet": {
				"title": "Morning Motivation &amp; Focus",
				"channelTitle": "Daily Boost",
				"publishedAt": "2024-01-15T08:00:00Z"
			}
		},
		{
			"id": { "kind": "youtube#video", "videoId": "def456" },
			"snippet": {
				"title": "5 AM Routine",
				"channelTitle": "Wake Up Well",
				"publishedAt": "2024-03-02T06:30:00Z"
			}
		}
	]
}`

const videosResponse = `{
	"items": [
		{ "id": "abc123", "contentDetails": { "duration": "PT12M34S" } },
		{ "id": "def456", "contentDetails": { "duration": "PT1H2M3S" } }
	]
}`

func newTestClient(t *testing.T, handler http.Handler) youtube.IYouTube {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := youtube.NewFromHTTP(context.Background(), tsClient, 3)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestConfig_Validate(t *testing.T) {
	t.Run("missing API key", func(t *testing.T) {
		cfg := youtube.Config{}
		if err := cfg.Validate(); err == nil {
			t.Fatalf("expected error for missing API key")
		}
	})

	t.Run("defaults filled", func(t *testing.T) {
		cfg := youtube.Config{APIKey: "test-api-key"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.MaxResults != youtube.DefaultMaxResults {
			t.Errorf("expected default max results, got %d", cfg.MaxResults)
		}
	})
}

func TestSearchVideos(t *testing.T) {
	t.Run("maps snippets and durations", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/youtube/v3/search":
				w.Write([]byte(searchResponse))
			case "/youtube/v3/videos":
				w.Write([]byte(videosResponse))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))

		videos, err := client.SearchVideos(context.Background(), "morning motivation")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(videos) != 2 {
			t.Fatalf("expected 2 videos, got %d", len(videos))
		}

		first := videos[0]
		if first.Title != "Morning Motivation & Focus" {
			t.Errorf("expected HTML entities unescaped, got %q", first.Title)
		}
		if first.URL != "https://www.youtube.com/watch?v=abc123" {
			t.Errorf("unexpected URL: %q", first.URL)
		}
		if first.Channel != "Daily Boost" {
			t.Errorf("unexpected channel: %q", first.Channel)
		}
		if first.Duration != "12:34" {
			t.Errorf("unexpected duration: %q", first.Duration)
		}

		if videos[1].Duration != "1:02:03" {
			t.Errorf("unexpected long duration: %q", videos[1].Duration)
		}
	})

	t.Run("duration lookup failure degrades gracefully", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/youtube/v3/search":
				w.Write([]byte(searchResponse))
			case "/youtube/v3/videos":
				w.WriteHeader(http.StatusInternalServerError)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))

		videos, err := client.SearchVideos(context.Background(), "morning motivation")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(videos) != 2 {
			t.Fatalf("expected 2 videos, got %d", len(videos))
		}
		for _, v := range videos {
			if v.Duration != "" {
				t.Errorf("expected empty duration, got %q", v.Duration)
			}
		}
	})

	t.Run("search failure surfaces", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := client.SearchVideos(context.Background(), "morning motivation")
		if err == nil {
			t.Fatalf("expected error from failed search")
		}
	})

	t.Run("no hits returns empty slice", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items": []}`))
		}))

		videos, err := client.SearchVideos(context.Background(), "morning motivation")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(videos) != 0 {
			t.Errorf("expected 0 videos, got %d", len(videos))
		}
	})

	t.Run("empty query rejected", func(t *testing.T) {
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := client.SearchVideos(context.Background(), "  ")
		if err == nil {
			t.Fatalf("expected error for empty query")
		}
	})
}
