package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sudhirerahul/taxi-analytics-go/internal/service"
	"github.com/sudhirerahul/taxi-analytics-go/pkg/response"
)

// HealthHandler handles liveness checks
type HealthHandler struct {
	service *service.AnalyticsService
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(service *service.AnalyticsService) *HealthHandler {
	return &HealthHandler{service: service}
}

// Check handles GET /health. Verifies the trip store answers and the
// zone catalog is loaded; no aggregation runs.
func (h *HealthHandler) Check(c *gin.Context) {
	health, err := h.service.CheckHealth(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "Trip store unavailable", err)
		return
	}
	response.Success(c, health)
}
