package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/shared/contextutil"
	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/shared/response"
)

const RoleHeader = "X-User-Role"

// RequireRole extracts the opaque role label set by the upstream
// access-control collaborator. The core never authenticates; it only
// needs a label to gate its mutation entry points.
func RequireRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetHeader(RoleHeader)
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "A role header is required", nil)
			c.Abort()
			return
		}

		c.Set("role", role)
		c.Request = c.Request.WithContext(
			contextutil.WithRole(c.Request.Context(), role),
		)
		c.Next()
	}
}
