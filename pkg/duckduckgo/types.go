package duckduckgo

import "time"

// Config holds the DuckDuckGo search client configuration
type Config struct {
	BaseURL    string
	MaxResults int
	Timeout    time.Duration
	UserAgent  string
}

// Validate checks the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.MaxResults <= 0 {
		c.MaxResults = DefaultMaxResults
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	return nil
}

// Result is a single web search result
type Result struct {
	Title   string
	Snippet string
	URL     string
}
