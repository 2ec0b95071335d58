package session

import "time"

const (
	// DefaultCapacity is the maximum number of tracked sessions
	DefaultCapacity = 1000

	// DefaultTTL is how long an idle session survives before eviction
	DefaultTTL = 30 * time.Minute

	// maxStoredTurns bounds the transcript kept per session
	maxStoredTurns = 50
)
