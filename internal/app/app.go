package app

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/analytics"
	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/bootstrap"
	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/dataset"
	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/employee"
	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/middleware"
	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/rbac"
)

const defaultDataFile = "Master.csv"

// BuildApp wires the dataset store, services and routes onto the router
// and returns the audit logger used for lifecycle events.
func BuildApp(router *gin.Engine) (bootstrap.AuditLogger, error) {
	dataFile := os.Getenv("HR_DATA_FILE")
	if dataFile == "" {
		dataFile = defaultDataFile
	}

	store := dataset.NewFileStore(dataFile)
	auditLogger := bootstrap.NewStdoutAuditLogger()

	employeeService := employee.NewService(store, auditLogger)
	rows, err := employeeService.Reload(context.Background())
	if err != nil {
		return nil, err
	}
	zap.L().Info("dataset loaded",
		zap.String("file", dataFile),
		zap.Int("rows", rows),
	)

	rbacService, err := rbac.NewService()
	if err != nil {
		return nil, err
	}

	policy := analytics.ParseTurnoverPolicy(os.Getenv("HR_VOLUNTARY_EXIT_TYPES"))
	analyticsService := analytics.NewService(employeeService, policy)

	employeeHandler := employee.NewHandler(employeeService)
	analyticsHandler := analytics.NewHandler(analyticsService)
	rbacHandler := rbac.NewHandler(rbacService, auditLogger)

	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	api := router.Group("/api/v1", middleware.RequireRole())
	{
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		analytics.RegisterRoutes(api, analyticsHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, rbacService)
	}

	return auditLogger, nil
}
