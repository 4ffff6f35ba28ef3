package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sudhirerahul/taxi-analytics-go/internal/zones"
	"github.com/sudhirerahul/taxi-analytics-go/pkg/response"
)

// ZoneHandler handles HTTP requests for the zone catalog
type ZoneHandler struct {
	catalog *zones.Catalog
}

// NewZoneHandler creates a new zone handler
func NewZoneHandler(catalog *zones.Catalog) *ZoneHandler {
	return &ZoneHandler{catalog: catalog}
}

// ListZones handles GET /api/v1/zones
func (h *ZoneHandler) ListZones(c *gin.Context) {
	response.Success(c, gin.H{
		"zones":    h.catalog.All(),
		"count":    h.catalog.Count(),
		"geometry": h.catalog.GeometryLoaded(),
	})
}

// GetZone handles GET /api/v1/zones/:id
func (h *ZoneHandler) GetZone(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid zone ID", err)
		return
	}

	entry, ok := h.catalog.Resolve(id)
	if !ok {
		response.Error(c, http.StatusNotFound, "Zone not found", nil)
		return
	}

	response.Success(c, entry)
}

// GeoJSON handles GET /api/v1/zones/geojson. Returns the loaded
// FeatureCollection as-is, or an empty collection when only the name
// table is active, matching what map clients expect.
func (h *ZoneHandler) GeoJSON(c *gin.Context) {
	raw := h.catalog.RawGeoJSON()
	if raw == nil {
		c.JSON(http.StatusOK, gin.H{
			"type":     "FeatureCollection",
			"features": []interface{}{},
		})
		return
	}
	c.Data(http.StatusOK, "application/geo+json", raw)
}
