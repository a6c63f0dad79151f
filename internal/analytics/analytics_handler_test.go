package analytics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/analytics"
	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/dataset"
	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/middleware"
	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/rbac"
)

type staticProvider struct{ d *dataset.Dataset }

func (p *staticProvider) Snapshot() *dataset.Dataset { return p.d }

func setupAnalyticsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	d := buildDataset(t, attritionHeaders, [][]string{
		{"A", "M", "Ops", "Agent", "Active", "2024-01-01", "", "", "", ""},
		{"B", "F", "Ops", "Agent", "Departed", "2024-01-01", "2025-01-01", "Resigned", "Salary", "CRM-1"},
		{"C", "M", "HR", "Clerk", "Active", "2025-01-01", "", "", "", ""},
	})
	svc := analytics.NewService(&staticProvider{d: d}, analytics.DefaultTurnoverPolicy())

	rbacService, err := rbac.NewService()
	require.NoError(t, err)

	router := gin.New()
	api := router.Group("/api/v1", middleware.RequireRole())
	analytics.RegisterRoutes(api, analytics.NewHandler(svc), rbacService)
	return router
}

func get(router *gin.Engine, path, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if role != "" {
		req.Header.Set(middleware.RoleHeader, role)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyticsRoutes(t *testing.T) {
	router := setupAnalyticsRouter(t)

	t.Run("report requires a role", func(t *testing.T) {
		w := get(router, "/api/v1/report", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("viewer reads the report", func(t *testing.T) {
		w := get(router, "/api/v1/report", rbac.RoleViewer)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":3`)
		assert.Contains(t, w.Body.String(), `"attrition_rate"`)
	})

	t.Run("filtered report", func(t *testing.T) {
		w := get(router, "/api/v1/report?department=HR", rbac.RoleViewer)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":1`)
	})

	t.Run("summary is plain text", func(t *testing.T) {
		w := get(router, "/api/v1/report/summary", rbac.RoleViewer)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
		assert.Contains(t, w.Body.String(), "HR ANALYTICS SUMMARY REPORT")
	})

	t.Run("every analytics endpoint responds", func(t *testing.T) {
		paths := []string{
			"cohorts", "managers", "survival", "risk", "turnover", "trends",
			"departments", "workforce", "attrition", "tenure", "probation", "retention90",
		}
		for _, p := range paths {
			w := get(router, "/api/v1/analytics/"+p, rbac.RoleViewer)
			assert.Equal(t, http.StatusOK, w.Code, p)
			assert.Contains(t, w.Body.String(), `"ok":true`, p)
		}
	})

	t.Run("role without analytics access denied", func(t *testing.T) {
		w := get(router, "/api/v1/analytics/cohorts", "stranger")
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("turnover carries the active policy", func(t *testing.T) {
		w := get(router, "/api/v1/analytics/turnover", rbac.RoleViewer)
		assert.Contains(t, w.Body.String(), `"voluntary_exit_types":["Resigned","Dropped"]`)
	})
}
