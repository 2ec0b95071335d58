package gemini

import "context"

// IGemini is the narrow surface the rest of the service depends on.
// Implementations are safe for concurrent use.
type IGemini interface {
	// GenerateContent requests a completion from the Generative Language API.
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Model reports the configured model name.
	Model() string
}

// New validates cfg and returns a Gemini client.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
