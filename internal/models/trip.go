package models

import "time"

// Fare bounds for a trip record to participate in any aggregate.
// Records outside the range are excluded entirely, not clamped.
const (
	MinValidFare = 0.0
	MaxValidFare = 500.0
)

// UnknownZoneID is the catch-all zone for geographically unattributed
// trips. Such records are kept in time-only aggregates but excluded
// from zone and route aggregates.
const UnknownZoneID = 265

// TripRecord is one completed trip as stored in the trip store.
// The hour/day/month columns are precomputed at load time from
// PickupTime so scans never re-parse timestamps.
type TripRecord struct {
	PickupZoneID  int
	DropoffZoneID int
	PickupTime    time.Time
	PickupHour    int // 0-23
	DayOfWeek     int // 0=Monday .. 6=Sunday
	PickupMonth   int // 1-12
	FareAmount    float64
	TripDistance  float64  // miles
	TripDuration  float64  // minutes
	WaitTime      *float64 // minutes, nil when not recorded
}

// HasValidFare reports whether the fare participates in aggregates.
func (t *TripRecord) HasValidFare() bool {
	return t.FareAmount >= MinValidFare && t.FareAmount <= MaxValidFare
}

// HasValidDistance reports whether the distance is usable. Zero is a
// valid distance; it only disqualifies the price-per-mile metric.
func (t *TripRecord) HasValidDistance() bool {
	return t.TripDistance >= 0
}

// PricePerMile returns fare/distance and whether it is defined.
func (t *TripRecord) PricePerMile() (float64, bool) {
	if t.TripDistance <= 0 {
		return 0, false
	}
	return t.FareAmount / t.TripDistance, true
}

// DayType restricts records to weekdays or weekends.
type DayType string

const (
	DayTypeAll     DayType = ""
	DayTypeWeekday DayType = "weekday"
	DayTypeWeekend DayType = "weekend"
)

// Matches reports whether a day-of-week (0=Monday) satisfies the day type.
func (d DayType) Matches(dayOfWeek int) bool {
	switch d {
	case DayTypeWeekday:
		return dayOfWeek >= 0 && dayOfWeek <= 4
	case DayTypeWeekend:
		return dayOfWeek == 5 || dayOfWeek == 6
	default:
		return true
	}
}

// Valid reports whether the day type is one of the known values.
func (d DayType) Valid() bool {
	return d == DayTypeAll || d == DayTypeWeekday || d == DayTypeWeekend
}
