package aggregate

import (
	"github.com/sudhirerahul/taxi-analytics-go/internal/models"
)

// zoneIDSpace is the size of the zone identifier space used when
// estimating a query's distinct-key count before scanning.
const zoneIDSpace = 265

// ValidateDescriptor rejects malformed or self-contradictory
// descriptors before any scan begins.
func ValidateDescriptor(desc models.QueryDescriptor) error {
	if !desc.Granularity.Valid() {
		return models.NewQueryError(models.KindInvalidDescriptor,
			"granularity must be one of hour, day-of-week, month; got %q", desc.Granularity)
	}
	if !desc.Dimension.Valid() {
		return models.NewQueryError(models.KindInvalidDescriptor,
			"dimension must be one of time-only, route-pair, pickup-zone, dropoff-zone; got %q", desc.Dimension)
	}

	f := desc.Filters
	if f.DayOfWeek != nil && (*f.DayOfWeek < 0 || *f.DayOfWeek > 6) {
		return models.NewQueryError(models.KindInvalidDescriptor,
			"day-of-week filter must be 0-6 (0=Monday); got %d", *f.DayOfWeek)
	}
	if f.Hour != nil && (*f.Hour < 0 || *f.Hour > 23) {
		return models.NewQueryError(models.KindInvalidDescriptor,
			"hour filter must be 0-23; got %d", *f.Hour)
	}
	if f.Month != nil && (*f.Month < 1 || *f.Month > 12) {
		return models.NewQueryError(models.KindInvalidDescriptor,
			"month filter must be 1-12; got %d", *f.Month)
	}
	if f.DateFrom != nil && f.DateTo != nil && !f.DateFrom.Before(*f.DateTo) {
		return models.NewQueryError(models.KindInvalidDescriptor,
			"date range is empty: from %s is not before to %s", f.DateFrom, f.DateTo)
	}
	if !f.DayType.Valid() {
		return models.NewQueryError(models.KindInvalidDescriptor,
			"day_type must be weekday or weekend; got %q", f.DayType)
	}

	if desc.Ranking != nil {
		if !desc.Ranking.Metric.Valid() {
			return models.NewQueryError(models.KindInvalidDescriptor,
				"ranking metric must be volume or revenue; got %q", desc.Ranking.Metric)
		}
		if desc.Ranking.TopN < 1 {
			return models.NewQueryError(models.KindInvalidDescriptor,
				"ranking top_n must be positive; got %d", desc.Ranking.TopN)
		}
	}

	// Hour-grained zone or route grouping over the whole dataset has a
	// combinatorially explosive key space; demand a narrowing time
	// filter instead of silently attempting it.
	if desc.Dimension != models.DimensionTime &&
		desc.Granularity == models.GranularityHour &&
		!f.HasTimeConstraint() {
		return models.NewQueryError(models.KindInvalidDescriptor,
			"%s grouping at hour granularity requires a time filter (hour, day-of-week, month, or date range)",
			desc.Dimension)
	}

	return nil
}

// EstimateKeys returns an upper bound on the distinct grouping keys
// the descriptor can produce, before any record is scanned.
func EstimateKeys(desc models.QueryDescriptor) int {
	switch desc.Dimension {
	case models.DimensionTime:
		return desc.Granularity.BucketCount()
	case models.DimensionRoutePair:
		pickup, dropoff := zoneIDSpace, zoneIDSpace
		if desc.Filters.PickupZoneID != nil {
			pickup = 1
		}
		if desc.Filters.DropoffZoneID != nil {
			dropoff = 1
		}
		return pickup * dropoff
	case models.DimensionPickupZone:
		if desc.Filters.PickupZoneID != nil {
			return 1
		}
		return zoneIDSpace
	case models.DimensionDropoffZone:
		if desc.Filters.DropoffZoneID != nil {
			return 1
		}
		return zoneIDSpace
	}
	return 0
}
