// Package aggregate implements the aggregation query engine: a pure,
// single-pass transformation from a query descriptor and a record
// stream to an ordered sequence of aggregate rows. Memory is bounded
// by the number of distinct grouping keys, never by record count.
package aggregate

import (
	"context"
	"sort"

	"github.com/sudhirerahul/taxi-analytics-go/internal/models"
	"github.com/sudhirerahul/taxi-analytics-go/internal/stats"
)

// ctxCheckInterval is how many records pass between context checks
// during accumulation.
const ctxCheckInterval = 4096

// RecordSource is the engine's view of a trip store scan.
// TripCursor satisfies it; tests feed slices through sliceSource.
type RecordSource interface {
	Next() bool
	Record() models.TripRecord
	Err() error
	Close() error
}

// corruptCounter is implemented by sources that skip unparseable rows.
type corruptCounter interface {
	CorruptRecords() int64
}

// ZoneResolver answers whether a zone id exists in the zone catalog.
// Records whose zones do not resolve are geographically unattributed:
// excluded from zone and route aggregates, retained in time-only ones.
type ZoneResolver interface {
	Known(zoneID int) bool
}

// Engine is the aggregation engine. It holds no per-query state and
// is safe for concurrent use across independent queries.
type Engine struct {
	zones ZoneResolver
	// maxGroups is the distinct-key budget; exceeding it aborts the
	// query with ResultTooLarge instead of growing without bound.
	maxGroups int
}

// NewEngine creates an engine with the given key budget. A nil
// resolver disables catalog membership checks; the unknown-zone
// sentinel is always excluded from zone aggregates.
func NewEngine(zones ZoneResolver, maxGroups int) *Engine {
	return &Engine{zones: zones, maxGroups: maxGroups}
}

// groupState carries the running accumulators for one grouping key.
// Denominators are tracked per metric: a record contributes to a
// metric only when the underlying field is present and valid.
type groupState struct {
	count    int64
	fare     stats.Accumulator
	priceML  stats.Accumulator
	duration stats.Accumulator
	waitTime stats.Accumulator
	distance stats.Accumulator
}

// Aggregate runs the full pipeline: validate, filter, group,
// accumulate, finalize, order. It consumes the source exactly once
// and closes it. No partial results are ever returned.
func (e *Engine) Aggregate(ctx context.Context, desc models.QueryDescriptor, src RecordSource) (*models.AggregateResult, error) {
	defer src.Close()

	if err := ValidateDescriptor(desc); err != nil {
		return nil, err
	}
	if est := EstimateKeys(desc); est > e.maxGroups {
		return nil, models.NewQueryError(models.KindResultTooLarge,
			"query may produce %d groups, budget is %d; narrow the filters", est, e.maxGroups)
	}

	groups := make(map[models.GroupKey]*groupState)

	var seen int64
	for src.Next() {
		seen++
		if seen%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, models.WrapQueryError(models.KindTimeout, err,
					"query aborted after %d records", seen)
			}
		}

		rec := src.Record()
		if !desc.Filters.Match(&rec) {
			continue
		}
		// Mandatory validity checks. A record failing either one is
		// excluded from every metric, not partially counted.
		if !rec.HasValidFare() || !rec.HasValidDistance() {
			continue
		}

		key, ok := e.groupKey(desc, &rec)
		if !ok {
			continue
		}

		g := groups[key]
		if g == nil {
			if len(groups) >= e.maxGroups {
				return nil, models.NewQueryError(models.KindResultTooLarge,
					"distinct group count exceeded budget of %d; narrow the filters", e.maxGroups)
			}
			g = &groupState{}
			groups[key] = g
		}

		g.count++
		g.fare.Add(rec.FareAmount)
		g.distance.Add(rec.TripDistance)
		if ppm, ok := rec.PricePerMile(); ok {
			g.priceML.Add(ppm)
		}
		if rec.TripDuration >= 0 {
			g.duration.Add(rec.TripDuration)
		}
		if rec.WaitTime != nil && *rec.WaitTime >= 0 {
			g.waitTime.Add(*rec.WaitTime)
		}
	}
	// Context expiry stops the cursor, which then reports a terminal
	// error; classify the expiry first so callers see a timeout rather
	// than a store fault.
	if err := ctx.Err(); err != nil {
		return nil, models.WrapQueryError(models.KindTimeout, err, "query aborted")
	}
	if err := src.Err(); err != nil {
		return nil, err
	}

	result := &models.AggregateResult{Rows: finalize(groups, desc.Ranking)}
	if cc, ok := src.(corruptCounter); ok {
		result.CorruptRecords = cc.CorruptRecords()
	}
	return result, nil
}

// groupKey derives the grouping key for a surviving record, and
// whether the record is attributable to the requested dimension.
func (e *Engine) groupKey(desc models.QueryDescriptor, rec *models.TripRecord) (models.GroupKey, bool) {
	switch desc.Dimension {
	case models.DimensionTime:
		switch desc.Granularity {
		case models.GranularityHour:
			return models.GroupKey{Bucket: rec.PickupHour}, true
		case models.GranularityDayOfWeek:
			return models.GroupKey{Bucket: rec.DayOfWeek}, true
		case models.GranularityMonth:
			return models.GroupKey{Bucket: rec.PickupMonth}, true
		}
		return models.GroupKey{}, false
	case models.DimensionRoutePair:
		if !e.zoneKnown(rec.PickupZoneID) || !e.zoneKnown(rec.DropoffZoneID) {
			return models.GroupKey{}, false
		}
		return models.GroupKey{PickupZoneID: rec.PickupZoneID, DropoffZoneID: rec.DropoffZoneID}, true
	case models.DimensionPickupZone:
		if !e.zoneKnown(rec.PickupZoneID) {
			return models.GroupKey{}, false
		}
		return models.GroupKey{PickupZoneID: rec.PickupZoneID}, true
	case models.DimensionDropoffZone:
		if !e.zoneKnown(rec.DropoffZoneID) {
			return models.GroupKey{}, false
		}
		return models.GroupKey{DropoffZoneID: rec.DropoffZoneID}, true
	}
	return models.GroupKey{}, false
}

func (e *Engine) zoneKnown(zoneID int) bool {
	if zoneID == models.UnknownZoneID {
		return false
	}
	if e.zones != nil {
		return e.zones.Known(zoneID)
	}
	return true
}

// finalize turns accumulators into rows and applies ordering: ranked
// queries sort descending by the metric with ties broken by ascending
// key, then truncate; unranked queries return ascending key order.
func finalize(groups map[models.GroupKey]*groupState, ranking *models.Ranking) []models.AggregateRow {
	rows := make([]models.AggregateRow, 0, len(groups))
	for key, g := range groups {
		if ranking != nil && g.count < int64(ranking.MinCount) {
			continue
		}
		rows = append(rows, models.AggregateRow{
			Key:          key,
			TripCount:    g.count,
			TotalRevenue: g.fare.Sum(),
			AvgFare:      g.fare.MeanPtr(),
			AvgPriceMile: g.priceML.MeanPtr(),
			AvgDuration:  g.duration.MeanPtr(),
			AvgWaitTime:  g.waitTime.MeanPtr(),
			AvgDistance:  g.distance.MeanPtr(),
		})
	}

	if ranking == nil {
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].Key.Less(rows[j].Key)
		})
		return rows
	}

	sort.Slice(rows, func(i, j int) bool {
		var mi, mj float64
		switch ranking.Metric {
		case models.RankByRevenue:
			mi, mj = rows[i].TotalRevenue, rows[j].TotalRevenue
		default:
			mi, mj = float64(rows[i].TripCount), float64(rows[j].TripCount)
		}
		if mi != mj {
			return mi > mj
		}
		return rows[i].Key.Less(rows[j].Key)
	})

	if len(rows) > ranking.TopN {
		rows = rows[:ranking.TopN]
	}
	return rows
}
