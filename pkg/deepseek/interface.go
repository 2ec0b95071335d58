package deepseek

import "context"

// IDeepSeek is the surface the provider adapter depends on.
type IDeepSeek interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model reports the configured model name.
	Model() string
}

var _ IDeepSeek = (*Client)(nil)
