package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/nycdash/taxi-dashboard-go/internal/models"
)

// LoadTrips bulk-inserts the cleaned trip table. It runs inside a
// single transaction with a prepared statement; after it returns the
// table is only ever read.
func LoadTrips(db *sql.DB, trips []models.TripRecord) error {
	return Transaction(db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT INTO taxi_trips (
			tpep_pickup_datetime, tpep_dropoff_datetime,
			pickup_date, pickup_hour, pickup_day_of_week,
			pu_location_id, do_location_id,
			fare_amount, trip_distance, total_amount, payment_type,
			trip_duration_minutes, trip_speed_mph
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare trip insert: %w", err)
		}
		defer stmt.Close()

		for _, t := range trips {
			var speed sql.NullFloat64
			if t.HasSpeed {
				speed = sql.NullFloat64{Float64: t.TripSpeedMPH, Valid: true}
			}
			_, err := stmt.Exec(
				t.PickupDatetime.Format(time.RFC3339),
				t.DropoffDatetime.Format(time.RFC3339),
				t.PickupDatetime.Format(models.DateFormat),
				t.PickupHour,
				t.PickupDayOfWeek,
				t.PULocationID,
				t.DOLocationID,
				t.FareAmount,
				t.TripDistance,
				t.TotalAmount,
				t.PaymentType,
				t.TripDurationMinutes,
				speed,
			)
			if err != nil {
				return fmt.Errorf("failed to insert trip: %w", err)
			}
		}
		return nil
	})
}

// LoadZones bulk-inserts the zone lookup table.
func LoadZones(db *sql.DB, zones []models.Zone) error {
	return Transaction(db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`INSERT OR REPLACE INTO taxi_zones
			(location_id, borough, zone, service_zone) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare zone insert: %w", err)
		}
		defer stmt.Close()

		for _, z := range zones {
			if _, err := stmt.Exec(z.LocationID, z.Borough, z.Name, z.ServiceZone); err != nil {
				return fmt.Errorf("failed to insert zone %d: %w", z.LocationID, err)
			}
		}
		return nil
	})
}
