package repository

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/sudhirerahul/taxi-analytics-go/internal/database"
	"github.com/sudhirerahul/taxi-analytics-go/internal/models"
)

func newTestRepo(t *testing.T) *TripRepository {
	t.Helper()
	db, err := database.Open(database.Config{Path: filepath.Join(t.TempDir(), "trips.db")})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}
	return NewTripRepository(db)
}

func seedTrips(t *testing.T, repo *TripRepository, trips []models.TripRecord) {
	t.Helper()
	if err := repo.InsertTrips(context.Background(), trips); err != nil {
		t.Fatalf("Failed to seed trips: %v", err)
	}
}

func testTrip(pickup, dropoff, hour, day, month int, fare float64) models.TripRecord {
	return models.TripRecord{
		PickupZoneID:  pickup,
		DropoffZoneID: dropoff,
		PickupTime:    time.Date(2024, time.Month(month), 10, hour, 30, 0, 0, time.UTC),
		PickupHour:    hour,
		DayOfWeek:     day,
		PickupMonth:   month,
		FareAmount:    fare,
		TripDistance:  2.5,
		TripDuration:  18,
	}
}

func collect(t *testing.T, cursor *TripCursor) []models.TripRecord {
	t.Helper()
	defer cursor.Close()
	var out []models.TripRecord
	for cursor.Next() {
		out = append(out, cursor.Record())
	}
	if err := cursor.Err(); err != nil {
		t.Fatalf("Cursor error: %v", err)
	}
	return out
}

func TestTripRepository_ScanRoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	w := 4.5
	in := testTrip(100, 200, 8, 2, 3, 25)
	in.WaitTime = &w
	seedTrips(t, repo, []models.TripRecord{in})

	cursor, err := repo.Scan(context.Background(), models.ScanFilter{})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	out := collect(t, cursor)

	if len(out) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(out))
	}
	got := out[0]
	if got.PickupZoneID != 100 || got.DropoffZoneID != 200 {
		t.Errorf("Zone mismatch: got (%d,%d)", got.PickupZoneID, got.DropoffZoneID)
	}
	if !got.PickupTime.Equal(in.PickupTime) {
		t.Errorf("Pickup time mismatch: got %v, want %v", got.PickupTime, in.PickupTime)
	}
	if got.WaitTime == nil || *got.WaitTime != 4.5 {
		t.Errorf("Wait time mismatch: got %v", got.WaitTime)
	}
	if got.FareAmount != 25 || got.TripDistance != 2.5 || got.TripDuration != 18 {
		t.Errorf("Metric mismatch: %+v", got)
	}
}

func TestTripRepository_NullWaitTime(t *testing.T) {
	repo := newTestRepo(t)
	seedTrips(t, repo, []models.TripRecord{testTrip(1, 2, 8, 0, 1, 10)})

	cursor, err := repo.Scan(context.Background(), models.ScanFilter{})
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	out := collect(t, cursor)
	if out[0].WaitTime != nil {
		t.Errorf("Expected nil wait time, got %v", *out[0].WaitTime)
	}
}

func TestTripRepository_PushdownMatchesPredicate(t *testing.T) {
	repo := newTestRepo(t)
	var trips []models.TripRecord
	for month := 1; month <= 6; month++ {
		for day := 0; day < 7; day++ {
			trips = append(trips, testTrip(100+day, 200, 8+day, day, month, 10))
		}
	}
	seedTrips(t, repo, trips)

	month := 3
	filters := models.Filters{Month: &month, DayType: models.DayTypeWeekend}

	// Pushdown enabled: the store applies the filter.
	pushed, err := repo.Scan(context.Background(), filters.ScanFilter())
	if err != nil {
		t.Fatalf("Scan with pushdown failed: %v", err)
	}
	pushedRecs := collect(t, pushed)

	// Pushdown disabled: full scan, filter applied client-side.
	full, err := repo.Scan(context.Background(), models.ScanFilter{})
	if err != nil {
		t.Fatalf("Full scan failed: %v", err)
	}
	var filtered []models.TripRecord
	for _, rec := range collect(t, full) {
		if filters.Match(&rec) {
			filtered = append(filtered, rec)
		}
	}

	if len(pushedRecs) == 0 {
		t.Fatal("Pushdown scan returned no records")
	}
	if !reflect.DeepEqual(pushedRecs, filtered) {
		t.Errorf("Pushdown results differ from predicate results:\n%+v\nvs\n%+v", pushedRecs, filtered)
	}
}

func TestTripRepository_ConcurrentScans(t *testing.T) {
	repo := newTestRepo(t)
	var trips []models.TripRecord
	for i := 0; i < 50; i++ {
		trips = append(trips, testTrip(1+i%5, 2, i%24, i%7, 1+i%12, 10))
	}
	seedTrips(t, repo, trips)

	// Two interleaved cursors must not share state.
	a, err := repo.Scan(context.Background(), models.ScanFilter{})
	if err != nil {
		t.Fatalf("Scan a failed: %v", err)
	}
	defer a.Close()
	b, err := repo.Scan(context.Background(), models.ScanFilter{})
	if err != nil {
		t.Fatalf("Scan b failed: %v", err)
	}
	defer b.Close()

	var countA, countB int
	for a.Next() {
		countA++
		if b.Next() {
			countB++
		}
	}
	for b.Next() {
		countB++
	}
	if countA != len(trips) || countB != len(trips) {
		t.Errorf("Interleaved scans saw %d and %d records, want %d each", countA, countB, len(trips))
	}
}

func TestTripRepository_ScanDeadlineReportsTimeout(t *testing.T) {
	repo := newTestRepo(t)
	var trips []models.TripRecord
	for i := 0; i < 200; i++ {
		trips = append(trips, testTrip(1+i%5, 2, i%24, i%7, 1+i%12, 10))
	}
	seedTrips(t, repo, trips)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	cursor, err := repo.Scan(ctx, models.ScanFilter{})
	if err != nil {
		if models.KindOf(err) != models.KindTimeout {
			t.Fatalf("Expected timeout kind from expired scan, got %v", err)
		}
		return
	}
	defer cursor.Close()

	// Let the deadline pass mid-scan; the cursor stops and must report
	// the expiry as a timeout, not a store fault.
	time.Sleep(100 * time.Millisecond)
	for cursor.Next() {
	}
	err = cursor.Err()
	if err == nil {
		t.Fatal("Expected an error from a scan stopped by its deadline")
	}
	if models.KindOf(err) != models.KindTimeout {
		t.Errorf("Expected timeout kind, got %v", err)
	}
}

func TestTripRepository_Version(t *testing.T) {
	repo := newTestRepo(t)

	version, err := repo.CurrentVersion(context.Background())
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 1 {
		t.Errorf("Expected initial version 1, got %d", version)
	}

	bumped, err := repo.BumpVersion(context.Background())
	if err != nil {
		t.Fatalf("BumpVersion failed: %v", err)
	}
	if bumped != 2 {
		t.Errorf("Expected version 2 after bump, got %d", bumped)
	}
}

func TestTripRepository_ScanCount(t *testing.T) {
	repo := newTestRepo(t)
	seedTrips(t, repo, []models.TripRecord{testTrip(1, 2, 8, 0, 1, 10)})

	if repo.ScanCount() != 0 {
		t.Fatalf("Expected 0 scans initially, got %d", repo.ScanCount())
	}
	for i := 1; i <= 3; i++ {
		cursor, err := repo.Scan(context.Background(), models.ScanFilter{})
		if err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		cursor.Close()
		if repo.ScanCount() != int64(i) {
			t.Errorf("Expected %d scans, got %d", i, repo.ScanCount())
		}
	}
}

func TestTripRepository_CountTrips(t *testing.T) {
	repo := newTestRepo(t)
	seedTrips(t, repo, []models.TripRecord{
		testTrip(1, 2, 8, 0, 1, 10),
		testTrip(3, 4, 9, 1, 2, 20),
	})

	count, err := repo.CountTrips(context.Background())
	if err != nil {
		t.Fatalf("CountTrips failed: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 trips, got %d", count)
	}
}
