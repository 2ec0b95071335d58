package response

const (
	// MessageSuccess is the message attached to successful responses.
	MessageSuccess = "Success"

	// InternalServerErrorCode is the error code for unhandled failures.
	InternalServerErrorCode = 500

	// DefaultErrorMessage hides internal error details from API consumers.
	DefaultErrorMessage = "Internal server error. Please try again later."
)
