package duckduckgo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/gocolly/colly/v2"
)

// duckduckgoImpl implements IDuckDuckGo
type duckduckgoImpl struct {
	baseURL    string
	maxResults int
	collector  *colly.Collector
}

// newDuckDuckGoImpl creates a new DuckDuckGo implementation
func newDuckDuckGoImpl(cfg Config) *duckduckgoImpl {
	c := colly.NewCollector(
		colly.UserAgent(cfg.UserAgent),
		colly.AllowURLRevisit(),
	)

	// Keep request pressure on the search endpoint low
	c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: 2,
	})

	c.SetRequestTimeout(cfg.Timeout)

	return &duckduckgoImpl{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		maxResults: cfg.MaxResults,
		collector:  c,
	}
}

// Search scrapes the DuckDuckGo HTML results page for the given query
func (d *duckduckgoImpl) Search(ctx context.Context, query string) ([]Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("duckduckgo: query is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Clone per search so callbacks and collected state stay request-local
	c := d.collector.Clone()

	var (
		results  []Result
		visitErr error
	)

	c.OnHTML("div.result", func(e *colly.HTMLElement) {
		if len(results) >= d.maxResults {
			return
		}
		// Sponsored nodes share the result markup, drop them
		if strings.Contains(e.Attr("class"), "result--ad") {
			return
		}

		title := strings.TrimSpace(e.ChildText("h2.result__title a.result__a"))
		link := resolveRedirect(e.ChildAttr("h2.result__title a.result__a", "href"))
		snippet := strings.TrimSpace(e.ChildText("a.result__snippet"))

		if title == "" || link == "" {
			return
		}

		results = append(results, Result{
			Title:   title,
			Snippet: snippet,
			URL:     link,
		})
	})

	c.OnError(func(r *colly.Response, err error) {
		visitErr = err
	})

	searchURL := fmt.Sprintf("%s/html/?q=%s", d.baseURL, url.QueryEscape(query))
	if err := c.Visit(searchURL); err != nil {
		return nil, fmt.Errorf("duckduckgo: failed to fetch results: %w", err)
	}

	if visitErr != nil {
		return nil, fmt.Errorf("duckduckgo: search request failed: %w", visitErr)
	}

	return results, nil
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg= redirect links and returns
// the destination URL. Direct links pass through unchanged.
func resolveRedirect(href string) string {
	if href == "" {
		return ""
	}

	u, err := url.Parse(href)
	if err != nil {
		return href
	}

	if target := u.Query().Get("uddg"); target != "" {
		return target
	}

	// Protocol-relative links come back from the results page occasionally
	if u.Scheme == "" && strings.HasPrefix(href, "//") {
		return "https:" + href
	}

	return href
}
