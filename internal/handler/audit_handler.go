package handler

import (
	"net/http"

	"procurement/internal/middleware"
	"procurement/internal/model"
	"procurement/internal/service"
	"procurement/pkg/pagination"
	"procurement/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup, auth *middleware.Auth) {
	group := router.Group("/api/audit-logs")
	group.Use(auth.RequireIdentity(), auth.RequireRole(model.RoleAdmin, model.RoleOfficeHead))
	{
		group.GET("", h.GetAuditLogs)
	}
}

// GetAuditLogs lists profile change records, newest first
// @Summary      Get audit logs
// @Tags         audit
// @Security     BearerAuth
// @Produce      json
// @Param        page   query     int  false  "Page number (default 1)"
// @Param        limit  query     int  false  "Number of items per page (default 20)"
// @Success      200    {object}  response.Response{data=response.Page}
// @Failure      403    {object}  response.Response
// @Router       /api/audit-logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	params := pagination.Parse(c)

	logs, total, err := h.auditService.GetAuditLogs(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to retrieve audit logs"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, response.Page{
		Items:      logs,
		Total:      total,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: params.TotalPages(total),
	}))
}
