package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrAllProvidersFailed means every provider in the chain was tried and failed.
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured means the chain is empty, usually a config problem.
	ErrNoProvidersConfigured = errors.New("no providers configured")
)

// ProviderError attributes a failure to the provider that produced it, so the
// manager's fallback log shows which link of the chain broke.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
