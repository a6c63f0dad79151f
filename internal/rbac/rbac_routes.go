package rbac

import (
	"github.com/gin-gonic/gin"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, service Service) {
	roles := r.Group("/roles")
	{
		roles.GET("", middleware.RBACAuthorize(service, "roles", "manage"), h.GetRoles)
		roles.PUT("", middleware.RBACAuthorize(service, "roles", "manage"), h.UpdateRole)
	}
}
