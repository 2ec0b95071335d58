package qwen

import "context"

// IQwen is the narrow surface the provider adapter depends on.
// Implementations are safe for concurrent use.
type IQwen interface {
	// GenerateContent requests a chat completion from the Qwen API.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model reports the configured model name.
	Model() string
}

// New validates cfg and returns a Qwen client.
func New(cfg Config) (IQwen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newQwenImpl(cfg), nil
}
