package contextutil

import "context"

const roleKey contextKey = "user_role"

// GetRole reads the opaque role label attached by the role middleware.
// Empty string means no role was presented.
func GetRole(ctx context.Context) string {
	if role, ok := ctx.Value(roleKey).(string); ok {
		return role
	}
	return ""
}

func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}
