package router

// Intent represents the kind of handling a message needs
type Intent string

const (
	IntentVideoSearch  Intent = "VIDEO_SEARCH"
	IntentWebSearch    Intent = "WEB_SEARCH"
	IntentConversation Intent = "CONVERSATION"
)

// Decision is the structured routing decision
type Decision struct {
	Intent Intent
	Query  string // derived search query; empty for CONVERSATION
	Cue    string // the phrase that triggered the intent, for logging
}
