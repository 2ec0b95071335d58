package youtube

import "fmt"

// Config holds the YouTube search client configuration
type Config struct {
	APIKey     string
	MaxResults int
}

// Validate checks the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("youtube: API key is required")
	}
	if c.MaxResults <= 0 {
		c.MaxResults = DefaultMaxResults
	}
	return nil
}

// Video is a single video search result
type Video struct {
	Title     string
	URL       string
	Channel   string
	Duration  string // human readable, e.g. "12:34"; empty when lookup fails
	Published string
}
