package llmprovider

import (
	"context"
	"fmt"
	"time"

	"morning-assistant/pkg/log"
)

// Config controls how the Manager walks its provider chain.
// The defaults used by the service are a single best-effort attempt per turn;
// retries and fallback only happen when enabled here.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int // attempts per provider, minimum 1
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration // bounds the whole chain, 0 means unbounded
}

// Manager picks a provider for each generation request, walking the chain in
// priority order when fallback is enabled.
type Manager struct {
	chain  []Provider
	config *Config
	l      log.Logger
}

// NewManager builds a Manager over providers already sorted by priority.
func NewManager(providers []Provider, config *Config, logger log.Logger) *Manager {
	return &Manager{
		chain:  providers,
		config: config,
		l:      logger,
	}
}

// GenerateContent asks the first provider for a completion and, when fallback
// is enabled, moves down the chain on failure. The last provider error is
// wrapped in ErrAllProvidersFailed when nothing succeeds.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.chain) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	var lastErr error
	for i, provider := range m.chain {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("generation aborted after %d provider(s): %w", i, ctx.Err())
		}

		resp, err := m.attempt(ctx, provider, req)
		if err == nil {
			m.l.Info(ctx, "generation ok",
				" provider=", provider.Name(),
				" model=", provider.Model(),
				" tokens=", tokenCount(resp),
			)
			return resp, nil
		}

		m.l.Warn(ctx, "generation failed",
			" provider=", provider.Name(),
			" model=", provider.Model(),
			" error=", err.Error(),
		)
		lastErr = err

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %v", ErrAllProvidersFailed, lastErr)
}

// attempt calls one provider up to RetryAttempts times with a linear backoff.
// With RetryAttempts=1 this is the single best-effort call the chat flow uses.
func (m *Manager) attempt(ctx context.Context, provider Provider, req *Request) (*Response, error) {
	attempts := m.config.RetryAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for n := 0; n < attempts; n++ {
		if n > 0 {
			select {
			case <-time.After(time.Duration(n) * m.config.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := provider.GenerateContent(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = &ProviderError{Provider: provider.Name(), Err: err}
	}

	return nil, lastErr
}

func tokenCount(resp *Response) int {
	if resp == nil || resp.Usage == nil {
		return 0
	}
	return resp.Usage.TotalTokens
}
