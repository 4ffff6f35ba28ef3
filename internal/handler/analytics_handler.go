package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sudhirerahul/taxi-analytics-go/internal/models"
	"github.com/sudhirerahul/taxi-analytics-go/internal/service"
	"github.com/sudhirerahul/taxi-analytics-go/pkg/response"
)

// AnalyticsHandler handles HTTP requests for aggregate queries
type AnalyticsHandler struct {
	service *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// TimeSeries handles GET /api/v1/analytics/time-series
func (h *AnalyticsHandler) TimeSeries(c *gin.Context) {
	granularity := models.Granularity(c.DefaultQuery("granularity", string(models.GranularityHour)))

	filters, ok := parseFilters(c)
	if !ok {
		return
	}

	rows, err := h.service.TimeSeries(c.Request.Context(), granularity, filters)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	response.Success(c, gin.H{
		"granularity": granularity,
		"rows":        rows,
	})
}

// AnalyzeRoute handles GET /api/v1/analytics/route
func (h *AnalyticsHandler) AnalyzeRoute(c *gin.Context) {
	pickup, err := strconv.Atoi(c.Query("pickup"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Missing or invalid pickup zone", err)
		return
	}
	dropoff, err := strconv.Atoi(c.Query("dropoff"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Missing or invalid dropoff zone", err)
		return
	}

	dayType := models.DayType(c.DefaultQuery("day_type", "all"))
	if dayType == "all" {
		dayType = models.DayTypeAll
	}
	if !dayType.Valid() {
		response.Error(c, http.StatusBadRequest, "day_type must be all, weekday or weekend", nil)
		return
	}

	analysis, err := h.service.AnalyzeRoute(c.Request.Context(), pickup, dropoff, dayType)
	if err != nil {
		writeQueryError(c, err)
		return
	}
	if analysis == nil {
		response.Error(c, http.StatusNotFound, "No trips found for this route", nil)
		return
	}

	response.Success(c, analysis)
}

// TopRoutes handles GET /api/v1/analytics/high-impact-routes
func (h *AnalyticsHandler) TopRoutes(c *gin.Context) {
	day, err := strconv.Atoi(c.Query("day"))
	if err != nil || day < 0 || day > 6 {
		response.Error(c, http.StatusBadRequest, "Invalid day. Must be 0-6 (0=Monday)", nil)
		return
	}
	hour, err := strconv.Atoi(c.Query("hour"))
	if err != nil || hour < 0 || hour > 23 {
		response.Error(c, http.StatusBadRequest, "Invalid hour. Must be 0-23", nil)
		return
	}

	routes, err := h.service.TopRoutes(c.Request.Context(), day, hour)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	response.Success(c, routes)
}

// TopRoutesByMonth handles GET /api/v1/analytics/high-impact-routes-by-month
func (h *AnalyticsHandler) TopRoutesByMonth(c *gin.Context) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		response.Error(c, http.StatusBadRequest, "Invalid month. Must be between 1-12", nil)
		return
	}

	routes, err := h.service.TopRoutesByMonth(c.Request.Context(), month)
	if err != nil {
		writeQueryError(c, err)
		return
	}

	response.Success(c, routes)
}

// parseFilters reads the optional conjunctive filters from the query
// string. Range validation happens in the engine; this only rejects
// unparseable values.
func parseFilters(c *gin.Context) (models.Filters, bool) {
	var filters models.Filters

	for _, p := range []struct {
		name string
		dst  **int
	}{
		{"day", &filters.DayOfWeek},
		{"hour", &filters.Hour},
		{"month", &filters.Month},
		{"pickup", &filters.PickupZoneID},
		{"dropoff", &filters.DropoffZoneID},
	} {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid "+p.name+" parameter", err)
			return models.Filters{}, false
		}
		*p.dst = &v
	}

	for _, p := range []struct {
		name string
		dst  **time.Time
	}{
		{"from", &filters.DateFrom},
		{"to", &filters.DateTo},
	} {
		raw := c.Query(p.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid "+p.name+" date, expected YYYY-MM-DD", err)
			return models.Filters{}, false
		}
		*p.dst = &t
	}

	dayType := models.DayType(c.DefaultQuery("day_type", ""))
	if dayType == "all" {
		dayType = models.DayTypeAll
	}
	if !dayType.Valid() {
		response.Error(c, http.StatusBadRequest, "day_type must be all, weekday or weekend", nil)
		return models.Filters{}, false
	}
	filters.DayType = dayType

	return filters, true
}
