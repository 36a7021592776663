package httputil

// Machine-readable error codes returned alongside error messages.
const (
	CodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeEmailAlreadyExists = "EMAIL_ALREADY_EXISTS"
	CodePasswordMismatch   = "PASSWORD_MISMATCH"
	CodeMissingAuth        = "MISSING_AUTHENTICATION"
	CodeInvalidAuthHeader  = "INVALID_AUTH_HEADER"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeTaskNotFound       = "TASK_NOT_FOUND"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeInvalidStatus      = "INVALID_STATUS"
	CodeInternalError      = "INTERNAL_ERROR"
)
