package router

import (
	"context"

	"morning-assistant/pkg/log"
)

// Router is the interface for message routing
type Router interface {
	Classify(ctx context.Context, message string) (Decision, error)
}

// KeywordRouter classifies user intent with deterministic keyword rules
type KeywordRouter struct {
	l log.Logger
}

// Ensure KeywordRouter implements Router interface
var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter
// Convention: Factory function returns concrete type (not interface) for internal packages
func New(l log.Logger) *KeywordRouter {
	return &KeywordRouter{
		l: l,
	}
}
