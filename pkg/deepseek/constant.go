package deepseek

const (
	// DefaultBaseURL is the public DeepSeek endpoint.
	DefaultBaseURL = "https://api.deepseek.com/v1"

	// DefaultModel is used when the config does not name one.
	DefaultModel = "deepseek-chat"
)
