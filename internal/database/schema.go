package database

import (
	"database/sql"
	"fmt"
)

// Schema for the two analytical tables. Timestamps are stored as
// RFC3339 text, pickup_date as YYYY-MM-DD for calendar-range filtering
// and trip_speed_mph as NULL when the speed is undefined.
var schema = []string{
	`CREATE TABLE taxi_trips (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		tpep_pickup_datetime TEXT NOT NULL,
		tpep_dropoff_datetime TEXT NOT NULL,
		pickup_date TEXT NOT NULL,
		pickup_hour INTEGER NOT NULL,
		pickup_day_of_week TEXT NOT NULL,
		pu_location_id INTEGER NOT NULL,
		do_location_id INTEGER NOT NULL,
		fare_amount REAL NOT NULL,
		trip_distance REAL NOT NULL,
		total_amount REAL NOT NULL,
		payment_type INTEGER NOT NULL,
		trip_duration_minutes REAL NOT NULL,
		trip_speed_mph REAL
	)`,
	`CREATE TABLE taxi_zones (
		location_id INTEGER PRIMARY KEY,
		borough TEXT,
		zone TEXT NOT NULL,
		service_zone TEXT
	)`,
	`CREATE INDEX idx_trips_pickup_date ON taxi_trips(pickup_date)`,
	`CREATE INDEX idx_trips_pickup_hour ON taxi_trips(pickup_hour)`,
	`CREATE INDEX idx_trips_payment_type ON taxi_trips(payment_type)`,
	`CREATE INDEX idx_trips_pu_location ON taxi_trips(pu_location_id)`,
}

// Init creates the analytical tables and indexes.
func Init(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}
