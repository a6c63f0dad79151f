package analytics

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
	report := r.Group("/report")
	{
		report.GET("", middleware.RBACAuthorize(rbacService, "report", "read"), h.Report)
		report.GET("/summary", middleware.RBACAuthorize(rbacService, "report", "read"), h.Summary)
	}

	a := r.Group("/analytics", middleware.RBACAuthorize(rbacService, "analytics", "read"))
	{
		a.GET("/cohorts", h.Cohorts)
		a.GET("/managers", h.Managers)
		a.GET("/survival", h.Survival)
		a.GET("/risk", h.Risk)
		a.GET("/turnover", h.Turnover)
		a.GET("/trends", h.Trends)
		a.GET("/departments", h.Departments)
		a.GET("/workforce", h.Workforce)
		a.GET("/attrition", h.Attrition)
		a.GET("/tenure", h.Tenure)
		a.GET("/probation", h.Probation)
		a.GET("/retention90", h.Retention90)
	}
}
