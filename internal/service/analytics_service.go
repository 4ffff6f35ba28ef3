package service

import (
	"context"
	"fmt"
	"time"

	"github.com/sudhirerahul/taxi-analytics-go/internal/aggregate"
	"github.com/sudhirerahul/taxi-analytics-go/internal/cache"
	"github.com/sudhirerahul/taxi-analytics-go/internal/models"
	"github.com/sudhirerahul/taxi-analytics-go/internal/repository"
	"github.com/sudhirerahul/taxi-analytics-go/internal/zones"
)

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

var monthNames = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Options tune the facade's ranking endpoints and query budget.
type Options struct {
	QueryTimeout time.Duration
	TopN         int
	// Minimum trips for a route to count as high-impact; the monthly
	// ranking uses the higher floor.
	MinRouteTrips        int
	MinMonthlyRouteTrips int
}

// AnalyticsService is the query facade: it translates external
// operations into query descriptors, consults the result cache, and
// runs the aggregation engine over trip store scans.
type AnalyticsService struct {
	repo    *repository.TripRepository
	engine  *aggregate.Engine
	cache   *cache.ResultCache
	catalog *zones.Catalog
	opts    Options
}

// NewAnalyticsService creates a new analytics service. cache may be
// nil, which disables memoization without affecting results.
func NewAnalyticsService(repo *repository.TripRepository, engine *aggregate.Engine, resultCache *cache.ResultCache, catalog *zones.Catalog, opts Options) *AnalyticsService {
	if opts.QueryTimeout <= 0 {
		opts.QueryTimeout = 10 * time.Second
	}
	if opts.TopN <= 0 {
		opts.TopN = 10
	}
	return &AnalyticsService{
		repo:    repo,
		engine:  engine,
		cache:   resultCache,
		catalog: catalog,
		opts:    opts,
	}
}

// runQuery executes one descriptor: cache lookup, then scan and
// aggregate under the wall-clock budget, then cache store.
func (s *AnalyticsService) runQuery(ctx context.Context, desc models.QueryDescriptor) ([]models.AggregateRow, error) {
	if err := aggregate.ValidateDescriptor(desc); err != nil {
		return nil, err
	}

	version, err := s.repo.CurrentVersion(ctx)
	if err != nil {
		return nil, err
	}

	if rows, ok := s.cache.Get(desc, version); ok {
		return rows, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.QueryTimeout)
	defer cancel()

	cursor, err := s.repo.Scan(ctx, desc.Filters.ScanFilter())
	if err != nil {
		return nil, err
	}
	result, err := s.engine.Aggregate(ctx, desc, cursor)
	if err != nil {
		return nil, err
	}

	s.cache.Put(desc, version, result.Rows)
	return result.Rows, nil
}

// TimeBucketRow is one time bucket of a time-series aggregation.
type TimeBucketRow struct {
	Bucket       int      `json:"bucket"`
	Label        string   `json:"label"`
	Volume       int64    `json:"volume"`
	TotalRevenue float64  `json:"total_revenue"`
	AvgFare      *float64 `json:"avg_total_fare,omitempty"`
	AvgPriceMile *float64 `json:"avg_price_per_mile,omitempty"`
	AvgDuration  *float64 `json:"avg_duration,omitempty"`
	AvgWaitTime  *float64 `json:"avg_wait_time,omitempty"`
	AvgDistance  *float64 `json:"avg_distance,omitempty"`
}

// TimeSeries aggregates the whole dataset into time buckets at the
// requested granularity, subject to the optional filters.
func (s *AnalyticsService) TimeSeries(ctx context.Context, granularity models.Granularity, filters models.Filters) ([]TimeBucketRow, error) {
	desc := models.QueryDescriptor{
		Granularity: granularity,
		Dimension:   models.DimensionTime,
		Filters:     filters,
	}
	rows, err := s.runQuery(ctx, desc)
	if err != nil {
		return nil, err
	}
	out := make([]TimeBucketRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, TimeBucketRow{
			Bucket:       r.Key.Bucket,
			Label:        bucketLabel(granularity, r.Key.Bucket),
			Volume:       r.TripCount,
			TotalRevenue: r.TotalRevenue,
			AvgFare:      r.AvgFare,
			AvgPriceMile: r.AvgPriceMile,
			AvgDuration:  r.AvgDuration,
			AvgWaitTime:  r.AvgWaitTime,
			AvgDistance:  r.AvgDistance,
		})
	}
	return out, nil
}

func bucketLabel(granularity models.Granularity, bucket int) string {
	switch granularity {
	case models.GranularityHour:
		return fmt.Sprintf("%d:00", bucket)
	case models.GranularityDayOfWeek:
		if bucket >= 0 && bucket < len(dayNames) {
			return dayNames[bucket]
		}
	case models.GranularityMonth:
		if bucket >= 1 && bucket <= len(monthNames) {
			return monthNames[bucket-1]
		}
	}
	return fmt.Sprintf("%d", bucket)
}

// RouteSummary is the headline block of a route analysis.
type RouteSummary struct {
	TotalTrips   int64    `json:"total_trips"`
	TotalRevenue float64  `json:"total_revenue"`
	AvgFare      *float64 `json:"avg_total_fare,omitempty"`
	AvgPriceMile *float64 `json:"avg_price_per_mile,omitempty"`
	AvgDuration  *float64 `json:"avg_duration,omitempty"`
	AvgWaitTime  *float64 `json:"avg_wait_time,omitempty"`
	AvgDistance  *float64 `json:"avg_distance,omitempty"`
}

// RouteAnalysis is the full breakdown for one pickup/dropoff pair.
type RouteAnalysis struct {
	PickupZoneID  int             `json:"pickup_zone"`
	DropoffZoneID int             `json:"dropoff_zone"`
	PickupName    string          `json:"pickup_name"`
	DropoffName   string          `json:"dropoff_name"`
	DayType       models.DayType  `json:"day_type,omitempty"`
	Summary       RouteSummary    `json:"summary"`
	Hourly        []TimeBucketRow `json:"hourly"`
	Daily         []TimeBucketRow `json:"daily"`
	Monthly       []TimeBucketRow `json:"monthly"`
}

// AnalyzeRoute produces the summary plus hourly, day-of-week and
// monthly breakdowns for a single route. Returns nil when the route
// has no recorded trips.
func (s *AnalyticsService) AnalyzeRoute(ctx context.Context, pickup, dropoff int, dayType models.DayType) (*RouteAnalysis, error) {
	filters := models.Filters{
		PickupZoneID:  &pickup,
		DropoffZoneID: &dropoff,
		DayType:       dayType,
	}

	// One group at most: both zones are pinned. Month granularity is a
	// placeholder; non-time dimensions ignore it.
	summaryRows, err := s.runQuery(ctx, models.QueryDescriptor{
		Granularity: models.GranularityMonth,
		Dimension:   models.DimensionRoutePair,
		Filters:     filters,
	})
	if err != nil {
		return nil, err
	}
	if len(summaryRows) == 0 {
		return nil, nil
	}

	analysis := &RouteAnalysis{
		PickupZoneID:  pickup,
		DropoffZoneID: dropoff,
		PickupName:    s.catalog.Name(pickup),
		DropoffName:   s.catalog.Name(dropoff),
		DayType:       dayType,
	}
	sr := summaryRows[0]
	analysis.Summary = RouteSummary{
		TotalTrips:   sr.TripCount,
		TotalRevenue: sr.TotalRevenue,
		AvgFare:      sr.AvgFare,
		AvgPriceMile: sr.AvgPriceMile,
		AvgDuration:  sr.AvgDuration,
		AvgWaitTime:  sr.AvgWaitTime,
		AvgDistance:  sr.AvgDistance,
	}

	for _, g := range []struct {
		granularity models.Granularity
		dst         *[]TimeBucketRow
	}{
		{models.GranularityHour, &analysis.Hourly},
		{models.GranularityDayOfWeek, &analysis.Daily},
		{models.GranularityMonth, &analysis.Monthly},
	} {
		rows, err := s.TimeSeries(ctx, g.granularity, filters)
		if err != nil {
			return nil, err
		}
		*g.dst = rows
	}

	return analysis, nil
}

// RouteRow is one ranked route.
type RouteRow struct {
	PickupZoneID  int      `json:"pickup_zone"`
	DropoffZoneID int      `json:"dropoff_zone"`
	PickupName    string   `json:"pickup_name"`
	DropoffName   string   `json:"dropoff_name"`
	RouteName     string   `json:"route_name"`
	Volume        int64    `json:"volume"`
	TotalRevenue  float64  `json:"total_revenue"`
	AvgFare       *float64 `json:"avg_total_fare,omitempty"`
	AvgDuration   *float64 `json:"avg_duration,omitempty"`
	AvgDistance   *float64 `json:"avg_distance,omitempty"`
}

// HighImpactRoutes holds the two rankings the dashboard shows side by
// side.
type HighImpactRoutes struct {
	Day       *int       `json:"day,omitempty"`
	DayName   string     `json:"day_name,omitempty"`
	Hour      *int       `json:"hour,omitempty"`
	TimeLabel string     `json:"time_label,omitempty"`
	Month     *int       `json:"month,omitempty"`
	MonthName string     `json:"month_name,omitempty"`
	ByVolume  []RouteRow `json:"top_by_volume"`
	ByRevenue []RouteRow `json:"top_by_revenue"`
}

// TopRoutes ranks route pairs for one day-of-week and hour, by volume
// and by revenue.
func (s *AnalyticsService) TopRoutes(ctx context.Context, day, hour int) (*HighImpactRoutes, error) {
	filters := models.Filters{DayOfWeek: &day, Hour: &hour}

	result := &HighImpactRoutes{
		Day:       &day,
		Hour:      &hour,
		TimeLabel: fmt.Sprintf("%d:00", hour),
	}
	if day >= 0 && day < len(dayNames) {
		result.DayName = dayNames[day]
	}

	var err error
	result.ByVolume, err = s.rankRoutes(ctx, filters, models.RankByVolume, s.opts.MinRouteTrips)
	if err != nil {
		return nil, err
	}
	result.ByRevenue, err = s.rankRoutes(ctx, filters, models.RankByRevenue, s.opts.MinRouteTrips)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// TopRoutesByMonth ranks route pairs within one calendar month.
func (s *AnalyticsService) TopRoutesByMonth(ctx context.Context, month int) (*HighImpactRoutes, error) {
	filters := models.Filters{Month: &month}

	result := &HighImpactRoutes{Month: &month}
	if month >= 1 && month <= len(monthNames) {
		result.MonthName = monthNames[month-1]
	}

	var err error
	result.ByVolume, err = s.rankRoutes(ctx, filters, models.RankByVolume, s.opts.MinMonthlyRouteTrips)
	if err != nil {
		return nil, err
	}
	result.ByRevenue, err = s.rankRoutes(ctx, filters, models.RankByRevenue, s.opts.MinMonthlyRouteTrips)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *AnalyticsService) rankRoutes(ctx context.Context, filters models.Filters, metric models.RankMetric, minTrips int) ([]RouteRow, error) {
	desc := models.QueryDescriptor{
		Granularity: models.GranularityMonth,
		Dimension:   models.DimensionRoutePair,
		Filters:     filters,
		Ranking: &models.Ranking{
			Metric:   metric,
			TopN:     s.opts.TopN,
			MinCount: minTrips,
		},
	}
	rows, err := s.runQuery(ctx, desc)
	if err != nil {
		return nil, err
	}

	out := make([]RouteRow, 0, len(rows))
	for _, r := range rows {
		pickupName := s.catalog.Name(r.Key.PickupZoneID)
		dropoffName := s.catalog.Name(r.Key.DropoffZoneID)
		out = append(out, RouteRow{
			PickupZoneID:  r.Key.PickupZoneID,
			DropoffZoneID: r.Key.DropoffZoneID,
			PickupName:    pickupName,
			DropoffName:   dropoffName,
			RouteName:     pickupName + " → " + dropoffName,
			Volume:        r.TripCount,
			TotalRevenue:  r.TotalRevenue,
			AvgFare:       r.AvgFare,
			AvgDuration:   r.AvgDuration,
			AvgDistance:   r.AvgDistance,
		})
	}
	return out, nil
}

// Health describes service liveness.
type Health struct {
	Status         string `json:"status"`
	TotalRecords   int64  `json:"total_records"`
	DatasetVersion int64  `json:"dataset_version"`
	ZonesLoaded    int    `json:"zones_loaded"`
	ZoneGeometry   bool   `json:"zone_geometry"`
}

// CheckHealth verifies the trip store is openable and the zone
// catalog is loaded. No aggregation is performed.
func (s *AnalyticsService) CheckHealth(ctx context.Context) (*Health, error) {
	count, err := s.repo.CountTrips(ctx)
	if err != nil {
		return nil, err
	}
	version, err := s.repo.CurrentVersion(ctx)
	if err != nil {
		return nil, err
	}
	return &Health{
		Status:         "healthy",
		TotalRecords:   count,
		DatasetVersion: version,
		ZonesLoaded:    s.catalog.Count(),
		ZoneGeometry:   s.catalog.GeometryLoaded(),
	}, nil
}

// ReloadZones swaps in a new zone catalog snapshot from GeoJSON.
func (s *AnalyticsService) ReloadZones(data []byte) error {
	return s.catalog.LoadGeoJSON(data)
}

// RefreshDataset bumps the dataset version after an out-of-band data
// load and drops all cached results.
func (s *AnalyticsService) RefreshDataset(ctx context.Context) (int64, error) {
	version, err := s.repo.BumpVersion(ctx)
	if err != nil {
		return 0, err
	}
	s.cache.Purge()
	return version, nil
}

// Zones exposes the catalog for the zone endpoints.
func (s *AnalyticsService) Zones() *zones.Catalog {
	return s.catalog
}
