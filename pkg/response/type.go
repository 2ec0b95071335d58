package response

// Resp is the envelope every JSON endpoint answers with. ErrorCode 0 means
// success; Data and Errors are omitted when empty so plain acknowledgements
// stay small.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}
