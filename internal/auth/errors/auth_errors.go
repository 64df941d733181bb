package autherrors

import (
	"net/http"

	"github.com/nawamdisilvaaltitude1-collab/hris-project/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)
	ErrAccountNotApproved = apperror.New(
		apperror.CodeForbidden,
		"Account not approved",
		http.StatusForbidden,
	)
	ErrEmailDomainNotAllowed = apperror.New(
		apperror.CodeDomainMismatch,
		"Email must belong to the company domain",
		http.StatusUnprocessableEntity,
	)
	ErrEmailAlreadyRegistered = apperror.New(
		apperror.CodeConflict,
		"Email is already registered",
		http.StatusUnprocessableEntity,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrUserNotPending = apperror.New(
		apperror.CodeInvalidState,
		"Account is not awaiting approval",
		http.StatusConflict,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user id",
		http.StatusBadRequest,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid or expired token",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Could not issue session token",
		http.StatusInternalServerError,
	)
)
