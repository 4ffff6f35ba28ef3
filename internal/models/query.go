package models

import (
	"fmt"
	"strings"
	"time"
)

// Granularity selects the time bucket for time-only aggregation.
type Granularity string

const (
	GranularityHour      Granularity = "hour"        // 0-23
	GranularityDayOfWeek Granularity = "day-of-week" // 0=Monday .. 6=Sunday
	GranularityMonth     Granularity = "month"       // 1-12
)

// Valid reports whether the granularity is one of the known values.
func (g Granularity) Valid() bool {
	switch g {
	case GranularityHour, GranularityDayOfWeek, GranularityMonth:
		return true
	}
	return false
}

// BucketCount returns the number of possible buckets for the granularity.
func (g Granularity) BucketCount() int {
	switch g {
	case GranularityHour:
		return 24
	case GranularityDayOfWeek:
		return 7
	case GranularityMonth:
		return 12
	}
	return 0
}

// Dimension selects the grouping key for aggregation.
type Dimension string

const (
	DimensionTime        Dimension = "time-only"
	DimensionRoutePair   Dimension = "route-pair"
	DimensionPickupZone  Dimension = "pickup-zone"
	DimensionDropoffZone Dimension = "dropoff-zone"
)

// Valid reports whether the dimension is one of the known values.
func (d Dimension) Valid() bool {
	switch d {
	case DimensionTime, DimensionRoutePair, DimensionPickupZone, DimensionDropoffZone:
		return true
	}
	return false
}

// RankMetric selects the ordering metric for top-N ranking.
type RankMetric string

const (
	RankByVolume  RankMetric = "volume"  // trip_count
	RankByRevenue RankMetric = "revenue" // total_revenue
)

// Valid reports whether the metric is one of the known values.
func (m RankMetric) Valid() bool {
	return m == RankByVolume || m == RankByRevenue
}

// Filters are the optional record constraints of a query. All set
// fields are combined with AND.
type Filters struct {
	DayOfWeek     *int
	Hour          *int
	Month         *int
	DateFrom      *time.Time
	DateTo        *time.Time
	PickupZoneID  *int
	DropoffZoneID *int
	DayType       DayType
}

// HasTimeConstraint reports whether any time-narrowing filter is set.
func (f Filters) HasTimeConstraint() bool {
	return f.DayOfWeek != nil || f.Hour != nil || f.Month != nil ||
		f.DateFrom != nil || f.DateTo != nil
}

// Match reports whether a record satisfies every set filter. This is
// the authoritative check; store-side pushdown of the same constraints
// is an optimization only.
func (f Filters) Match(rec *TripRecord) bool {
	if f.DayOfWeek != nil && rec.DayOfWeek != *f.DayOfWeek {
		return false
	}
	if f.Hour != nil && rec.PickupHour != *f.Hour {
		return false
	}
	if f.Month != nil && rec.PickupMonth != *f.Month {
		return false
	}
	if f.DateFrom != nil && rec.PickupTime.Before(*f.DateFrom) {
		return false
	}
	if f.DateTo != nil && !rec.PickupTime.Before(*f.DateTo) {
		return false
	}
	if f.PickupZoneID != nil && rec.PickupZoneID != *f.PickupZoneID {
		return false
	}
	if f.DropoffZoneID != nil && rec.DropoffZoneID != *f.DropoffZoneID {
		return false
	}
	if !f.DayType.Matches(rec.DayOfWeek) {
		return false
	}
	return true
}

// ScanFilter converts the query filters into the store pushdown form.
func (f Filters) ScanFilter() ScanFilter {
	return ScanFilter{
		PickupZoneID:  f.PickupZoneID,
		DropoffZoneID: f.DropoffZoneID,
		DayOfWeek:     f.DayOfWeek,
		Hour:          f.Hour,
		Month:         f.Month,
		DayType:       f.DayType,
		DateFrom:      f.DateFrom,
		DateTo:        f.DateTo,
	}
}

// ScanFilter is the pushdown filter the trip store evaluates before
// records reach the aggregation engine. It is a performance contract
// only: the engine applies the same constraints itself, so disabling
// pushdown changes latency, never results.
type ScanFilter struct {
	PickupZoneID  *int
	DropoffZoneID *int
	DayOfWeek     *int
	Hour          *int
	Month         *int
	DayType       DayType
	DateFrom      *time.Time
	DateTo        *time.Time
}

// Ranking requests top-N selection over finalized groups. MinCount
// drops groups below a trip-count floor before ranking, mirroring the
// noise threshold the dashboard applies to route rankings.
type Ranking struct {
	Metric   RankMetric
	TopN     int
	MinCount int
}

// QueryDescriptor is the engine's unit of work. It is a value object;
// two descriptors with the same canonical key describe the same query.
type QueryDescriptor struct {
	Granularity Granularity
	Dimension   Dimension
	Filters     Filters
	Ranking     *Ranking
}

// CanonicalKey renders the descriptor in a fixed field order so it can
// serve as a cache key. Unset filters are omitted.
func (q QueryDescriptor) CanonicalKey() string {
	var b strings.Builder
	fmt.Fprintf(&b, "g=%s|d=%s", q.Granularity, q.Dimension)
	if q.Filters.DayOfWeek != nil {
		fmt.Fprintf(&b, "|dow=%d", *q.Filters.DayOfWeek)
	}
	if q.Filters.Hour != nil {
		fmt.Fprintf(&b, "|hr=%d", *q.Filters.Hour)
	}
	if q.Filters.Month != nil {
		fmt.Fprintf(&b, "|mo=%d", *q.Filters.Month)
	}
	if q.Filters.DateFrom != nil {
		fmt.Fprintf(&b, "|from=%d", q.Filters.DateFrom.Unix())
	}
	if q.Filters.DateTo != nil {
		fmt.Fprintf(&b, "|to=%d", q.Filters.DateTo.Unix())
	}
	if q.Filters.PickupZoneID != nil {
		fmt.Fprintf(&b, "|pu=%d", *q.Filters.PickupZoneID)
	}
	if q.Filters.DropoffZoneID != nil {
		fmt.Fprintf(&b, "|do=%d", *q.Filters.DropoffZoneID)
	}
	if q.Filters.DayType != DayTypeAll {
		fmt.Fprintf(&b, "|dt=%s", q.Filters.DayType)
	}
	if q.Ranking != nil {
		fmt.Fprintf(&b, "|rank=%s:%d", q.Ranking.Metric, q.Ranking.TopN)
		if q.Ranking.MinCount > 0 {
			fmt.Fprintf(&b, ":min%d", q.Ranking.MinCount)
		}
	}
	return b.String()
}
