package handlers

// MissingUserMessage is returned when the request carries no usable user
const MissingUserMessage = "Missing required field: user"

// UserTypeMismatchCode and UserTypeMismatchMessage describe a user value
// that is present but not a string.
const (
	UserTypeMismatchCode    = "ValidationException"
	UserTypeMismatchMessage = "One or more parameter values were invalid: Condition parameter type does not match schema type"
)

// InternalErrorMessage is the fixed error text for unexpected failures
const InternalErrorMessage = "Internal server error"

// ErrorResponse is the body for validation and recognized store failures
type ErrorResponse struct {
	Error string `json:"error"`
}

// InternalErrorResponse is the body for unexpected failures. Message always
// carries the failure detail, even when it is empty.
type InternalErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
