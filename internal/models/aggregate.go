package models

// GroupKey identifies one aggregation group. For time-only queries
// only Bucket is set; for route-pair queries PickupZoneID and
// DropoffZoneID are set; for single-zone dimensions only the
// respective zone field is set. The zero value sorts first.
type GroupKey struct {
	Bucket        int `json:"bucket,omitempty"`
	PickupZoneID  int `json:"pickup_zone,omitempty"`
	DropoffZoneID int `json:"dropoff_zone,omitempty"`
}

// Less orders keys lexicographically by (Bucket, PickupZoneID,
// DropoffZoneID), which is chronological for time buckets and
// ascending-pair for routes.
func (k GroupKey) Less(other GroupKey) bool {
	if k.Bucket != other.Bucket {
		return k.Bucket < other.Bucket
	}
	if k.PickupZoneID != other.PickupZoneID {
		return k.PickupZoneID < other.PickupZoneID
	}
	return k.DropoffZoneID < other.DropoffZoneID
}

// AggregateRow is one finalized aggregation group. Averages are
// pointers: nil means the group had no contributing records for that
// metric, which callers must be able to tell apart from zero.
type AggregateRow struct {
	Key          GroupKey `json:"key"`
	TripCount    int64    `json:"trip_count"`
	TotalRevenue float64  `json:"total_revenue"`
	AvgFare      *float64 `json:"avg_fare,omitempty"`
	AvgPriceMile *float64 `json:"avg_price_per_mile,omitempty"`
	AvgDuration  *float64 `json:"avg_duration,omitempty"`
	AvgWaitTime  *float64 `json:"avg_wait_time,omitempty"`
	AvgDistance  *float64 `json:"avg_distance,omitempty"`
}

// AggregateResult is the engine output for one query.
type AggregateResult struct {
	Rows []AggregateRow `json:"rows"`
	// CorruptRecords is the number of store rows skipped because they
	// could not be parsed.
	CorruptRecords int64 `json:"corrupt_records,omitempty"`
}
