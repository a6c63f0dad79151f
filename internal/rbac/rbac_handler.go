package rbac

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/bootstrap"
	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/shared/apperror"
	"github.com/ahmedalsadeqhr/HR-Dashboard/internal/shared/response"
)

type Handler struct {
	service Service
	audit   bootstrap.AuditLogger
	logger  *zap.Logger
}

func NewHandler(service Service, audit bootstrap.AuditLogger, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, audit: audit, logger: l}
}

func (h *Handler) GetRoles(c *gin.Context) {
	roles, err := h.service.Roles()
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, roles, nil)
}

func (h *Handler) UpdateRole(c *gin.Context) {
	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.SetRolePermissions(req.Name, req.Permissions)
	if err != nil {
		h.logger.Error("update role failed", zap.String("role", req.Name), zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	h.audit.Log(c.Request.Context(), bootstrap.AuditLog{
		Action:  "ROLE_UPDATED",
		Message: "Role permissions replaced",
		Meta:    map[string]any{"role": req.Name, "permissions": len(req.Permissions)},
	})
	response.Success(c, http.StatusOK, resp, nil)
}
