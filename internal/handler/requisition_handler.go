package handler

import (
	"errors"
	"net/http"

	"procurement/internal/middleware"
	"procurement/internal/service"
	"procurement/pkg/response"

	"github.com/gin-gonic/gin"
)

type RequisitionHandler struct {
	requisitionService service.RequisitionService
}

func NewRequisitionHandler(requisitionService service.RequisitionService) *RequisitionHandler {
	return &RequisitionHandler{requisitionService: requisitionService}
}

func (h *RequisitionHandler) RegisterRoutes(router *gin.RouterGroup, auth *middleware.Auth) {
	router.GET("/api/requisition-view/:id", auth.RequireIdentity(), h.GetRequisition)
}

// GetRequisition returns a purchase request with its items and creator
// @Summary      View requisition
// @Tags         requisition
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Purchase request ID"
// @Success      200  {object}  service.RequisitionResponse
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/requisition-view/{id} [get]
func (h *RequisitionHandler) GetRequisition(c *gin.Context) {
	requisition, err := h.requisitionService.Get(c.Request.Context(), c.Param("id"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, requisition)
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, response.Error(http.StatusNotFound, "Not found"))
	default:
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Internal error"))
	}
}
