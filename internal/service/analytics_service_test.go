package service

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/sudhirerahul/taxi-analytics-go/internal/aggregate"
	"github.com/sudhirerahul/taxi-analytics-go/internal/cache"
	"github.com/sudhirerahul/taxi-analytics-go/internal/database"
	"github.com/sudhirerahul/taxi-analytics-go/internal/models"
	"github.com/sudhirerahul/taxi-analytics-go/internal/repository"
	"github.com/sudhirerahul/taxi-analytics-go/internal/zones"
)

func newTestService(t *testing.T, withCache bool) (*AnalyticsService, *repository.TripRepository) {
	t.Helper()
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "trips.db")})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	repo := repository.NewTripRepository(db)
	catalog := zones.NewCatalog()
	engine := aggregate.NewEngine(catalog, 100000)

	var resultCache *cache.ResultCache
	if withCache {
		resultCache = cache.NewResultCache(64, time.Minute)
	}

	svc := NewAnalyticsService(repo, engine, resultCache, catalog, Options{
		QueryTimeout:         5 * time.Second,
		TopN:                 10,
		MinRouteTrips:        1,
		MinMonthlyRouteTrips: 1,
	})
	return svc, repo
}

func seedScenario(t *testing.T, repo *repository.TripRepository) {
	t.Helper()
	var trips []models.TripRecord
	add := func(pickup, dropoff, hour, day, month int, fare float64) {
		trips = append(trips, models.TripRecord{
			PickupZoneID:  pickup,
			DropoffZoneID: dropoff,
			PickupTime:    time.Date(2024, time.Month(month), 12, hour, 0, 0, 0, time.UTC),
			PickupHour:    hour,
			DayOfWeek:     day,
			PickupMonth:   month,
			FareAmount:    fare,
			TripDistance:  2,
			TripDuration:  15,
		})
	}
	// Four trips on route 100->200, fares summing to 100.
	add(100, 200, 8, 0, 1, 10)
	add(100, 200, 9, 1, 1, 20)
	add(100, 200, 10, 2, 1, 30)
	add(100, 200, 11, 3, 1, 40)
	// Six one-off trips on other routes.
	add(50, 60, 8, 0, 1, 5)
	add(50, 61, 9, 1, 1, 5)
	add(51, 60, 10, 2, 1, 5)
	add(52, 62, 11, 3, 1, 5)
	add(53, 63, 12, 4, 1, 5)
	add(54, 64, 13, 5, 1, 5)

	if err := repo.InsertTrips(context.Background(), trips); err != nil {
		t.Fatalf("Failed to seed: %v", err)
	}
}

func TestAnalyticsService_TimeSeriesAdditivity(t *testing.T) {
	svc, repo := newTestService(t, false)
	seedScenario(t, repo)

	rows, err := svc.TimeSeries(context.Background(), models.GranularityHour, models.Filters{})
	if err != nil {
		t.Fatalf("TimeSeries failed: %v", err)
	}

	var total int64
	for _, r := range rows {
		total += r.Volume
	}
	if total != 10 {
		t.Errorf("Hourly volumes sum to %d, want 10", total)
	}
}

func TestAnalyticsService_TopRoutesByMonth(t *testing.T) {
	svc, repo := newTestService(t, false)
	seedScenario(t, repo)

	routes, err := svc.TopRoutesByMonth(context.Background(), 1)
	if err != nil {
		t.Fatalf("TopRoutesByMonth failed: %v", err)
	}

	if len(routes.ByVolume) == 0 {
		t.Fatal("Expected ranked routes")
	}
	top := routes.ByVolume[0]
	if top.PickupZoneID != 100 || top.DropoffZoneID != 200 {
		t.Errorf("Expected (100,200) on top, got (%d,%d)", top.PickupZoneID, top.DropoffZoneID)
	}
	if top.Volume != 4 || top.TotalRevenue != 100 {
		t.Errorf("Expected volume 4 revenue 100, got %d/%f", top.Volume, top.TotalRevenue)
	}
	if top.AvgFare == nil || *top.AvgFare != 25 {
		t.Errorf("Expected avg fare 25, got %v", top.AvgFare)
	}
	if top.PickupName == "" || top.RouteName == "" {
		t.Errorf("Expected zone names to be resolved, got %+v", top)
	}
	if routes.MonthName != "January" {
		t.Errorf("Expected month name January, got %q", routes.MonthName)
	}
}

func TestAnalyticsService_IdempotentCaching(t *testing.T) {
	svc, repo := newTestService(t, true)
	seedScenario(t, repo)

	first, err := svc.TopRoutesByMonth(context.Background(), 1)
	if err != nil {
		t.Fatalf("First query failed: %v", err)
	}
	scansAfterFirst := repo.ScanCount()

	second, err := svc.TopRoutesByMonth(context.Background(), 1)
	if err != nil {
		t.Fatalf("Second query failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Repeated query returned different rows:\n%+v\nvs\n%+v", first, second)
	}
	if repo.ScanCount() != scansAfterFirst {
		t.Errorf("Second query re-scanned the store: %d scans, want %d",
			repo.ScanCount(), scansAfterFirst)
	}
}

func TestAnalyticsService_CacheOffSameResults(t *testing.T) {
	cached, repoA := newTestService(t, true)
	uncached, repoB := newTestService(t, false)
	seedScenario(t, repoA)
	seedScenario(t, repoB)

	a, err := cached.TimeSeries(context.Background(), models.GranularityDayOfWeek, models.Filters{})
	if err != nil {
		t.Fatalf("Cached query failed: %v", err)
	}
	b, err := uncached.TimeSeries(context.Background(), models.GranularityDayOfWeek, models.Filters{})
	if err != nil {
		t.Fatalf("Uncached query failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Cache changed results:\n%+v\nvs\n%+v", a, b)
	}
}

func TestAnalyticsService_RefreshInvalidatesCache(t *testing.T) {
	svc, repo := newTestService(t, true)
	seedScenario(t, repo)

	if _, err := svc.TopRoutesByMonth(context.Background(), 1); err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	scans := repo.ScanCount()

	if _, err := svc.RefreshDataset(context.Background()); err != nil {
		t.Fatalf("RefreshDataset failed: %v", err)
	}

	if _, err := svc.TopRoutesByMonth(context.Background(), 1); err != nil {
		t.Fatalf("Query after refresh failed: %v", err)
	}
	if repo.ScanCount() <= scans {
		t.Error("Expected a fresh scan after dataset refresh")
	}
}

func TestAnalyticsService_AnalyzeRoute(t *testing.T) {
	svc, repo := newTestService(t, false)
	seedScenario(t, repo)

	analysis, err := svc.AnalyzeRoute(context.Background(), 100, 200, models.DayTypeAll)
	if err != nil {
		t.Fatalf("AnalyzeRoute failed: %v", err)
	}
	if analysis == nil {
		t.Fatal("Expected analysis for seeded route")
	}
	if analysis.Summary.TotalTrips != 4 {
		t.Errorf("Expected 4 trips, got %d", analysis.Summary.TotalTrips)
	}
	if analysis.Summary.AvgFare == nil || *analysis.Summary.AvgFare != 25 {
		t.Errorf("Expected avg fare 25, got %v", analysis.Summary.AvgFare)
	}
	if len(analysis.Hourly) != 4 {
		t.Errorf("Expected 4 hourly buckets, got %d", len(analysis.Hourly))
	}
	if analysis.PickupName != "Gravesend" {
		t.Errorf("Expected zone 100 to resolve to Gravesend, got %q", analysis.PickupName)
	}
}

func TestAnalyticsService_AnalyzeRouteNoData(t *testing.T) {
	svc, repo := newTestService(t, false)
	seedScenario(t, repo)

	analysis, err := svc.AnalyzeRoute(context.Background(), 7, 8, models.DayTypeAll)
	if err != nil {
		t.Fatalf("AnalyzeRoute failed: %v", err)
	}
	if analysis != nil {
		t.Errorf("Expected nil analysis for empty route, got %+v", analysis)
	}
}

func TestAnalyticsService_WeekdayFilter(t *testing.T) {
	svc, repo := newTestService(t, false)
	seedScenario(t, repo)

	analysis, err := svc.AnalyzeRoute(context.Background(), 100, 200, models.DayTypeWeekend)
	if err != nil {
		t.Fatalf("AnalyzeRoute failed: %v", err)
	}
	// All four route trips fall on weekdays (days 0-3).
	if analysis != nil {
		t.Errorf("Expected no weekend trips on route, got %+v", analysis.Summary)
	}
}

func TestAnalyticsService_InvalidDescriptorSurfaces(t *testing.T) {
	svc, repo := newTestService(t, false)
	seedScenario(t, repo)

	_, err := svc.TimeSeries(context.Background(), "fortnight", models.Filters{})
	if models.KindOf(err) != models.KindInvalidDescriptor {
		t.Fatalf("Expected invalid_descriptor, got %v", err)
	}
	if repo.ScanCount() != 0 {
		t.Errorf("Invalid descriptor must be rejected before any scan, saw %d scans", repo.ScanCount())
	}
}
