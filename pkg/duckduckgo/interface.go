package duckduckgo

import "context"

// IDuckDuckGo defines the interface for DuckDuckGo web search.
// Implementations are safe for concurrent use.
type IDuckDuckGo interface {
	// Search runs a web search and returns up to MaxResults results.
	// A query with no hits returns an empty slice and no error.
	Search(ctx context.Context, query string) ([]Result, error)
}

// New creates a new DuckDuckGo search client with the given configuration
func New(cfg Config) (IDuckDuckGo, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newDuckDuckGoImpl(cfg), nil
}
