package response

const (
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "Success"
	// DefaultErrorMessage hides internal details from the client.
	DefaultErrorMessage = "Something went wrong"
	// ValidationErrorMsg is the message for validation failures.
	ValidationErrorMsg = "Validation failed"
)

const (
	// InternalServerErrorCode is the error code for unexpected failures.
	InternalServerErrorCode = 500
	// ValidationErrorCode is the error code for validation failures.
	ValidationErrorCode = 400
)
