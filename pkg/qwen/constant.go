package qwen

import "time"

const (
	// DefaultModel is used when the config does not name one.
	DefaultModel = "qwen-plus"

	// DefaultBaseURL is the DashScope OpenAI-compatible endpoint.
	DefaultBaseURL = "https://dashscope-intl.aliyuncs.com/compatible-mode/v1"

	// DefaultTimeout bounds each HTTP call to the API.
	DefaultTimeout = 30 * time.Second
)
