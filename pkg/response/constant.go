package response

const (
	// MessageSuccess is the message attached to successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal details from API consumers.
	DefaultErrorMessage = "Something went wrong, please try again later"

	// InternalServerErrorCode is the error_code for unhandled failures.
	InternalServerErrorCode = 500
)
