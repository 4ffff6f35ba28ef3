package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations is the ordered schema history of the trip store. The
// trips table mirrors the columns the ingestion job precomputes so
// aggregation scans never derive time buckets at query time.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_trips",
		SQL: `
			CREATE TABLE IF NOT EXISTS trips (
				pickup_zone_id INTEGER NOT NULL,
				dropoff_zone_id INTEGER NOT NULL,
				pickup_ts INTEGER NOT NULL,
				pickup_hour INTEGER NOT NULL,
				day_of_week INTEGER NOT NULL,
				pickup_month INTEGER NOT NULL,
				fare_amount REAL NOT NULL,
				trip_distance REAL NOT NULL,
				duration_minutes REAL NOT NULL,
				wait_time_minutes REAL
			)
		`,
	},
	{
		Version: 2,
		Name:    "create_trip_indexes",
		SQL: `
			CREATE INDEX IF NOT EXISTS idx_trips_pickup_ts ON trips(pickup_ts);
			CREATE INDEX IF NOT EXISTS idx_trips_month ON trips(pickup_month);
			CREATE INDEX IF NOT EXISTS idx_trips_day_hour ON trips(day_of_week, pickup_hour);
			CREATE INDEX IF NOT EXISTS idx_trips_route ON trips(pickup_zone_id, dropoff_zone_id)
		`,
	},
	{
		Version: 3,
		Name:    "create_dataset_meta",
		SQL: `
			CREATE TABLE IF NOT EXISTS dataset_meta (
				id INTEGER PRIMARY KEY CHECK (id = 1),
				version INTEGER NOT NULL,
				refreshed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			);
			INSERT OR IGNORE INTO dataset_meta (id, version) VALUES (1, 1)
		`,
	},
}

// Migrate applies all pending migrations in version order.
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedMigrations(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		err := Transaction(db, func(tx *sql.Tx) error {
			if _, err := tx.Exec(m.SQL); err != nil {
				return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
			}
			if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
				return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
			}
			return nil
		})
		if err != nil {
			return err
		}
		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

func appliedMigrations(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations ORDER BY version")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	return applied, rows.Err()
}
