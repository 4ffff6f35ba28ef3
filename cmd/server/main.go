package main

import (
	"flag"
	"log"

	"github.com/sudhirerahul/taxi-analytics-go/internal/aggregate"
	"github.com/sudhirerahul/taxi-analytics-go/internal/api"
	"github.com/sudhirerahul/taxi-analytics-go/internal/cache"
	"github.com/sudhirerahul/taxi-analytics-go/internal/config"
	"github.com/sudhirerahul/taxi-analytics-go/internal/database"
	"github.com/sudhirerahul/taxi-analytics-go/internal/repository"
	"github.com/sudhirerahul/taxi-analytics-go/internal/service"
	"github.com/sudhirerahul/taxi-analytics-go/internal/zones"
)

func main() {
	configPath := flag.String("config", "config.yml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	db, err := database.Open(database.Config{Path: cfg.DBPath})
	if err != nil {
		log.Fatal("Failed to open trip store: ", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate trip store: ", err)
	}

	// Zone catalog loads before any query executes.
	catalog := zones.NewCatalog()
	if err := catalog.LoadFile(cfg.ZonesPath); err != nil {
		log.Fatal("Failed to load zone catalog: ", err)
	}

	repo := repository.NewTripRepository(db)
	engine := aggregate.NewEngine(catalog, cfg.MaxGroups)
	resultCache := cache.NewResultCache(cfg.CacheEntries, cfg.CacheTTL())

	svc := service.NewAnalyticsService(repo, engine, resultCache, catalog, service.Options{
		QueryTimeout:         cfg.QueryTimeout(),
		TopN:                 cfg.TopN,
		MinRouteTrips:        cfg.MinRouteTrips,
		MinMonthlyRouteTrips: cfg.MinMonthlyRouteTrips,
	})

	router := api.SetupRouter(cfg, svc)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
