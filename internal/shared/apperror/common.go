package apperror

import (
	"fmt"
	"net/http"
	"strings"
)

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
		"A role header is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// MissingColumns builds the Schema Error raised when a loaded table
// lacks one of the required source columns. The offending column names
// travel in Details so the client can show them.
func MissingColumns(columns []string) *AppError {
	return New(
		CodeMissingColumns,
		fmt.Sprintf("Missing required columns: %s", strings.Join(columns, ", ")),
		http.StatusUnprocessableEntity,
	).WithDetails(columns)
}

// Persistence wraps a failed load or save of the backing file.
func Persistence(err error, op string) *AppError {
	return Wrap(
		err,
		CodePersistenceError,
		fmt.Sprintf("Failed to %s employee data file", op),
		http.StatusInternalServerError,
	)
}

func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s is required", field),
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		fmt.Sprintf("%s is invalid", field),
		http.StatusBadRequest,
	)
}
