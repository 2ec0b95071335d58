package chat

import (
	"morning-assistant/internal/model"
	"morning-assistant/internal/router"
)

// RespondInput is the input for one user turn.
// UserID is carried in model.Scope, not here.
type RespondInput struct {
	SessionID string // empty starts a new session
	Message   string // raw user text
}

// RespondOutput is the assistant's reply for one user turn.
type RespondOutput struct {
	SessionID string
	Reply     string
	Intent    router.Intent
	Sources   []model.SearchResult // web results backing the reply, if any
	Videos    []model.VideoResult  // video results presented in the reply, if any
}

// Starter is a suggested conversation opener shown on the chat surface.
type Starter struct {
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}
