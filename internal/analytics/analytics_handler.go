package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/dataset"
	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/shared/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("analytics.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.handler")
	}
	return &Handler{service: service, logger: l}
}

func filterFromQuery(c *gin.Context) dataset.Filter {
	return dataset.Filter{
		Department: c.Query("department"),
		Status:     c.Query("status"),
		Gender:     c.Query("gender"),
	}
}

func (h *Handler) Report(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Report(filterFromQuery(c)), nil)
}

func (h *Handler) Summary(c *gin.Context) {
	c.String(http.StatusOK, h.service.SummaryText(filterFromQuery(c)))
}

func (h *Handler) Cohorts(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Cohorts(filterFromQuery(c)), nil)
}

func (h *Handler) Managers(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Managers(filterFromQuery(c)), nil)
}

func (h *Handler) Survival(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Survival(filterFromQuery(c)), nil)
}

func (h *Handler) Risk(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Risk(filterFromQuery(c)), nil)
}

func (h *Handler) Turnover(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Turnover(filterFromQuery(c)), nil)
}

func (h *Handler) Trends(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Trends(filterFromQuery(c)), nil)
}

func (h *Handler) Departments(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Departments(filterFromQuery(c)), nil)
}

func (h *Handler) Workforce(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Workforce(filterFromQuery(c)), nil)
}

func (h *Handler) Attrition(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Attrition(filterFromQuery(c)), nil)
}

func (h *Handler) Tenure(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Tenure(filterFromQuery(c)), nil)
}

func (h *Handler) Probation(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Probation(filterFromQuery(c)), nil)
}

func (h *Handler) Retention90(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Retention90(filterFromQuery(c)), nil)
}
