package employee

import (
	"github.com/gin-gonic/gin"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/middleware"
	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/rbac"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService rbac.Service,
) {
	employees := r.Group("/employees")
	{
		employees.GET("", middleware.RBACAuthorize(rbacService, "employees", "read"), h.GetAll)
		employees.GET("/:id", middleware.RBACAuthorize(rbacService, "employees", "read"), h.GetByID)
		employees.POST("", middleware.RBACAuthorize(rbacService, "employees", "write"), h.Create)
		employees.PUT("/:id", middleware.RBACAuthorize(rbacService, "employees", "write"), h.Update)
		employees.DELETE("/:id", middleware.RBACAuthorize(rbacService, "employees", "write"), h.Delete)
	}

	ds := r.Group("/dataset")
	{
		ds.POST("/reload", middleware.RBACAuthorize(rbacService, "dataset", "write"), h.Reload)
	}
}
