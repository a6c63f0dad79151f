package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput   = "INVALID_INPUT"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeForbidden      = "FORBIDDEN"
	CodeNotFound       = "NOT_FOUND"
	CodeConflict       = "CONFLICT"
	CodeMissingColumns = "MISSING_COLUMNS"

	// Server errors (5xx)
	CodeInternalError    = "INTERNAL_ERROR"
	CodePersistenceError = "PERSISTENCE_ERROR"
)
