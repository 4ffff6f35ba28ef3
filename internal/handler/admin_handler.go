package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sudhirerahul/taxi-analytics-go/internal/service"
	"github.com/sudhirerahul/taxi-analytics-go/pkg/response"
)

// maxZonePayload caps zone GeoJSON uploads at 50MB, matching the
// size of a full NYC zone export with geometry.
const maxZonePayload = 50 << 20

// AdminHandler handles the authenticated maintenance endpoints
type AdminHandler struct {
	service *service.AnalyticsService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(service *service.AnalyticsService) *AdminHandler {
	return &AdminHandler{service: service}
}

// ReloadZones handles POST /api/v1/admin/zones. The request body is a
// GeoJSON FeatureCollection; the catalog swaps to it atomically, so
// in-flight queries keep the snapshot they started with.
func (h *AdminHandler) ReloadZones(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxZonePayload))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	if err := h.service.ReloadZones(data); err != nil {
		response.Error(c, http.StatusBadRequest, "Failed to load zones", err)
		return
	}

	response.Success(c, gin.H{
		"message": "Zone catalog reloaded",
		"zones":   h.service.Zones().Count(),
	})
}

// RefreshDataset handles POST /api/v1/admin/dataset/refresh. Called
// after an out-of-band data load; bumps the dataset version so every
// cached result is invalidated at once.
func (h *AdminHandler) RefreshDataset(c *gin.Context) {
	version, err := h.service.RefreshDataset(c.Request.Context())
	if err != nil {
		writeQueryError(c, err)
		return
	}

	response.Success(c, gin.H{
		"message": "Dataset version bumped, cache purged",
		"version": version,
	})
}
