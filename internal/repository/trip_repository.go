package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/sudhirerahul/taxi-analytics-go/internal/models"
)

// TripRepository is the access layer over the trip store. It exposes a
// scan primitive with filter pushdown and the dataset version marker.
// All methods are safe for concurrent use; every Scan call gets an
// independent cursor.
type TripRepository struct {
	db    *sql.DB
	scans atomic.Int64
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

const tripColumns = `pickup_zone_id, dropoff_zone_id, pickup_ts,
	pickup_hour, day_of_week, pickup_month,
	fare_amount, trip_distance, duration_minutes, wait_time_minutes`

// Scan starts a single-pass scan of trip records satisfying the
// pushdown filter. The filter is an optimization: callers must apply
// their own predicate and behave identically with a zero filter.
func (r *TripRepository) Scan(ctx context.Context, filter models.ScanFilter) (*TripCursor, error) {
	query := "SELECT " + tripColumns + " FROM trips"

	var conditions []string
	var args []interface{}

	if filter.PickupZoneID != nil {
		conditions = append(conditions, "pickup_zone_id = ?")
		args = append(args, *filter.PickupZoneID)
	}
	if filter.DropoffZoneID != nil {
		conditions = append(conditions, "dropoff_zone_id = ?")
		args = append(args, *filter.DropoffZoneID)
	}
	if filter.DayOfWeek != nil {
		conditions = append(conditions, "day_of_week = ?")
		args = append(args, *filter.DayOfWeek)
	}
	if filter.Hour != nil {
		conditions = append(conditions, "pickup_hour = ?")
		args = append(args, *filter.Hour)
	}
	if filter.Month != nil {
		conditions = append(conditions, "pickup_month = ?")
		args = append(args, *filter.Month)
	}
	switch filter.DayType {
	case models.DayTypeWeekday:
		conditions = append(conditions, "day_of_week <= 4")
	case models.DayTypeWeekend:
		conditions = append(conditions, "day_of_week >= 5")
	}
	if filter.DateFrom != nil {
		conditions = append(conditions, "pickup_ts >= ?")
		args = append(args, filter.DateFrom.Unix())
	}
	if filter.DateTo != nil {
		conditions = append(conditions, "pickup_ts < ?")
		args = append(args, filter.DateTo.Unix())
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		if ctx.Err() != nil {
			return nil, models.WrapQueryError(models.KindTimeout, err, "scan aborted")
		}
		return nil, models.WrapQueryError(models.KindStoreUnavailable, err, "failed to scan trips")
	}

	r.scans.Add(1)
	return &TripCursor{rows: rows}, nil
}

// ScanCount returns the number of scans started since construction.
// Instrumentation hook for cache idempotency checks.
func (r *TripRepository) ScanCount() int64 {
	return r.scans.Load()
}

// CurrentVersion returns the monotonic dataset version marker bumped
// by out-of-band refreshes.
func (r *TripRepository) CurrentVersion(ctx context.Context) (int64, error) {
	var version int64
	err := r.db.QueryRowContext(ctx, "SELECT version FROM dataset_meta WHERE id = 1").Scan(&version)
	if err != nil {
		return 0, models.WrapQueryError(models.KindStoreUnavailable, err, "failed to read dataset version")
	}
	return version, nil
}

// CountTrips returns the total row count. Used by the health check.
func (r *TripRepository) CountTrips(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM trips").Scan(&count)
	if err != nil {
		return 0, models.WrapQueryError(models.KindStoreUnavailable, err, "failed to count trips")
	}
	return count, nil
}

// InsertTrips appends a batch of records. The store is append-only;
// this exists for the out-of-band loader and test fixtures, never for
// the query path.
func (r *TripRepository) InsertTrips(ctx context.Context, trips []models.TripRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin insert: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO trips (`+tripColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range trips {
		var wait sql.NullFloat64
		if t.WaitTime != nil {
			wait = sql.NullFloat64{Float64: *t.WaitTime, Valid: true}
		}
		_, err := stmt.ExecContext(ctx,
			t.PickupZoneID, t.DropoffZoneID, t.PickupTime.Unix(),
			t.PickupHour, t.DayOfWeek, t.PickupMonth,
			t.FareAmount, t.TripDistance, t.TripDuration, wait,
		)
		if err != nil {
			return fmt.Errorf("failed to insert trip: %w", err)
		}
	}

	return tx.Commit()
}

// BumpVersion increments the dataset version marker. Called after an
// out-of-band data refresh so caches drop stale entries.
func (r *TripRepository) BumpVersion(ctx context.Context) (int64, error) {
	_, err := r.db.ExecContext(ctx,
		"UPDATE dataset_meta SET version = version + 1, refreshed_at = CURRENT_TIMESTAMP WHERE id = 1")
	if err != nil {
		return 0, models.WrapQueryError(models.KindStoreUnavailable, err, "failed to bump dataset version")
	}
	return r.CurrentVersion(ctx)
}

// TripCursor is a lazy, single-pass iterator over scanned records.
// Corrupt rows are skipped and counted rather than failing the scan.
type TripCursor struct {
	rows    *sql.Rows
	current models.TripRecord
	corrupt int64
	err     error
}

// Next advances to the next parseable record.
func (c *TripCursor) Next() bool {
	for c.rows.Next() {
		var (
			rec      models.TripRecord
			pickupTS int64
			wait     sql.NullFloat64
		)
		err := c.rows.Scan(
			&rec.PickupZoneID, &rec.DropoffZoneID, &pickupTS,
			&rec.PickupHour, &rec.DayOfWeek, &rec.PickupMonth,
			&rec.FareAmount, &rec.TripDistance, &rec.TripDuration, &wait,
		)
		if err != nil {
			c.corrupt++
			log.Printf("Skipping corrupt trip record: %v", err)
			continue
		}
		rec.PickupTime = time.Unix(pickupTS, 0).UTC()
		if wait.Valid {
			w := wait.Float64
			rec.WaitTime = &w
		}
		c.current = rec
		return true
	}
	c.err = c.rows.Err()
	return false
}

// Record returns the record at the current cursor position.
func (c *TripCursor) Record() models.TripRecord {
	return c.current
}

// CorruptRecords returns how many rows were skipped as unparseable.
func (c *TripCursor) CorruptRecords() int64 {
	return c.corrupt
}

// Err returns the terminal scan error, if any. A scan stopped by
// context expiry reports a timeout, not a store fault.
func (c *TripCursor) Err() error {
	if c.err == nil {
		return nil
	}
	if errors.Is(c.err, context.DeadlineExceeded) || errors.Is(c.err, context.Canceled) {
		return models.WrapQueryError(models.KindTimeout, c.err, "scan aborted")
	}
	return models.WrapQueryError(models.KindStoreUnavailable, c.err, "scan failed")
}

// Close releases the underlying rows.
func (c *TripCursor) Close() error {
	return c.rows.Close()
}
