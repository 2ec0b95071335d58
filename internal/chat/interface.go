package chat

import (
	"context"

	"morning-assistant/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Respond handles one user turn: classify the message, run a web or
	// video search when needed, generate the assistant reply. Upstream
	// failures surface as an apology reply, not an error.
	Respond(ctx context.Context, sc model.Scope, input RespondInput) (RespondOutput, error)

	// Starters returns the suggested conversation openers.
	Starters() []Starter

	// Reset clears the transcript and routine state of a session.
	// It reports whether the session existed.
	Reset(ctx context.Context, sc model.Scope, sessionID string) bool
}
