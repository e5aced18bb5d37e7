package handler

import (
	"net/http"

	"procurement/internal/middleware"
	"procurement/internal/service"
	"procurement/pkg/response"

	"github.com/gin-gonic/gin"
)

type MetricsHandler struct {
	metricsService service.MetricsService
}

func NewMetricsHandler(metricsService service.MetricsService) *MetricsHandler {
	return &MetricsHandler{metricsService: metricsService}
}

func (h *MetricsHandler) RegisterRoutes(router *gin.RouterGroup, auth *middleware.Auth) {
	metrics := router.Group("/api/metrics")
	metrics.Use(auth.RequireIdentity())
	{
		metrics.GET("/officer-metrics", h.GetOfficerMetrics)
		metrics.GET("/spending-by-month", h.GetMonthlySpending)
	}
}

// GetOfficerMetrics returns the dashboard key metrics
// @Summary      Get officer key metrics
// @Description  Total spend, purchase request and quotation counts, and spending grouped by procurement mode and date
// @Tags         metrics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  model.OfficerMetrics
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/metrics/officer-metrics [get]
func (h *MetricsHandler) GetOfficerMetrics(c *gin.Context) {
	metrics, err := h.metricsService.GetOfficerMetrics(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "failed to fetch metrics"))
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// GetMonthlySpending returns spending per month split by procurement mode
// @Summary      Get monthly spending
// @Description  Spending grouped into one point per month with shopping, small value and competitive bidding amounts
// @Tags         metrics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=[]model.SpendingDataPoint}
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/metrics/spending-by-month [get]
func (h *MetricsHandler) GetMonthlySpending(c *gin.Context) {
	points, err := h.metricsService.GetMonthlySpending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "failed to fetch spending data"))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, points))
}
