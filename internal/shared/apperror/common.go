package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// RequiredField builds a field-level validation error, e.g. "Email is required".
func RequiredField(field string) *AppError {
	return New(CodeValidation, field+" is required", http.StatusUnprocessableEntity)
}

// InvalidField builds a field-level validation error, e.g. "Email is invalid".
func InvalidField(field string) *AppError {
	return New(CodeValidation, field+" is invalid", http.StatusUnprocessableEntity)
}
