package youtube

import (
	"context"
	"net/http"
)

// IYouTube defines the interface for YouTube video search.
// Implementations are safe for concurrent use.
type IYouTube interface {
	// SearchVideos runs a video search and returns up to MaxResults videos.
	// A query with no hits returns an empty slice and no error. Durations
	// are filled on a best effort basis.
	SearchVideos(ctx context.Context, query string) ([]Video, error)
}

// New creates a new YouTube search client authenticated with an API key
func New(ctx context.Context, cfg Config) (IYouTube, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newYouTubeImpl(ctx, cfg)
}

// NewFromHTTP creates a YouTube search client from a pre-configured HTTP
// client. Auth is assumed to be handled by the client's transport.
func NewFromHTTP(ctx context.Context, httpClient *http.Client, maxResults int) (IYouTube, error) {
	if maxResults <= 0 {
		maxResults = DefaultMaxResults
	}
	return newYouTubeImplFromHTTP(ctx, httpClient, maxResults)
}
