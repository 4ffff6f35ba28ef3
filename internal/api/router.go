package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sudhirerahul/taxi-analytics-go/internal/config"
	"github.com/sudhirerahul/taxi-analytics-go/internal/handler"
	"github.com/sudhirerahul/taxi-analytics-go/internal/middleware"
	"github.com/sudhirerahul/taxi-analytics-go/internal/service"
)

// SetupRouter wires the HTTP surface around the analytics service.
func SetupRouter(cfg *config.Config, svc *service.AnalyticsService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())

	// CORS: the dashboard is served from a different origin.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	analyticsHandler := handler.NewAnalyticsHandler(svc)
	zoneHandler := handler.NewZoneHandler(svc.Zones())
	adminHandler := handler.NewAdminHandler(svc)
	healthHandler := handler.NewHealthHandler(svc)

	r.GET("/health", healthHandler.Check)

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow())

	api := r.Group("/api/v1")
	api.Use(limiter.Middleware())
	{
		analytics := api.Group("/analytics")
		{
			analytics.GET("/time-series", analyticsHandler.TimeSeries)
			analytics.GET("/route", analyticsHandler.AnalyzeRoute)
			analytics.GET("/high-impact-routes", analyticsHandler.TopRoutes)
			analytics.GET("/high-impact-routes-by-month", analyticsHandler.TopRoutesByMonth)
		}

		zonesGroup := api.Group("/zones")
		{
			zonesGroup.GET("", zoneHandler.ListZones)
			zonesGroup.GET("/geojson", zoneHandler.GeoJSON)
			zonesGroup.GET("/:id", zoneHandler.GetZone)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuth(cfg.JWTSecret))
		{
			admin.POST("/zones", adminHandler.ReloadZones)
			admin.POST("/dataset/refresh", adminHandler.RefreshDataset)
		}
	}

	return r
}
