package duckduckgo

import "time"

const (
	// DefaultBaseURL is the DuckDuckGo HTML search endpoint
	DefaultBaseURL = "https://html.duckduckgo.com"

	// DefaultMaxResults is the number of results returned per search
	DefaultMaxResults = 3

	// DefaultTimeout is the default request timeout
	DefaultTimeout = 10 * time.Second

	// DefaultUserAgent identifies the client on outgoing requests
	DefaultUserAgent = "Mozilla/5.0 (compatible; MorningAssistant/1.0; +https://github.com/morning-assistant)"
)
