package model

import "time"

// Role identifies who authored a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ConversationTurn is a single recorded message in a session transcript.
// Turns are immutable once recorded.
type ConversationTurn struct {
	Role      Role
	Text      string
	Timestamp time.Time
}
