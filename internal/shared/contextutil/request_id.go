package contextutil

import "context"

// Unexported key type keeps context values collision-safe.
type contextKey string

const requestIDKey contextKey = "request_id"

// GetRequestID reads the request ID injected by the middleware.
func GetRequestID(ctx context.Context) string {
	if rid, ok := ctx.Value(requestIDKey).(string); ok {
		return rid
	}
	return ""
}

// WithRequestID injects the ID into a context (also handy in unit tests).
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey, rid)
}
