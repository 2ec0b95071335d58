package model

// SearchResult is a single web search hit. Ordered, request-scoped.
type SearchResult struct {
	Title   string
	Snippet string
	URL     string
}

// VideoResult is a single video search hit. Ordered, request-scoped.
type VideoResult struct {
	Title     string
	URL       string
	Channel   string
	Duration  string // human readable, e.g. "12:34", empty when unknown
	Published string // RFC3339 publish time as returned by the video API
}
