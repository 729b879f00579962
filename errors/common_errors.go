package errors

import "net/http"

// NewBadRequest creates a new 400 Bad Request AppError.
func NewBadRequest(message string, underlyingErr error, details ...interface{}) *AppError {
	if message == "" {
		message = "The server could not process the request due to a client error."
	}
	return NewAppError(http.StatusBadRequest, message, underlyingErr, details...)
}

// NewInternalServerError creates a new 500 Internal Server Error AppError.
func NewInternalServerError(message string, underlyingErr error, details ...interface{}) *AppError {
	if message == "" {
		message = "An unexpected error occurred on the server."
	}
	return NewAppError(http.StatusInternalServerError, message, underlyingErr, details...)
}

// NewValidationFailed creates a 422 Unprocessable Entity AppError, used for validation errors.
// Field level details are derived from underlyingErr and appended after any explicit details.
func NewValidationFailed(message string, underlyingErr error, details ...interface{}) *AppError {
	formattedValidationErrors := FormatValidationErrors(underlyingErr)
	if formattedValidationErrors != nil {
		details = append(details, formattedValidationErrors)
	}
	if message == "" {
		message = "Input validation failed."
	}
	return NewAppError(http.StatusUnprocessableEntity, message, underlyingErr, details...)
}
