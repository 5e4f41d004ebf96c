package models

import "time"

// RawTrip is one row of the TLC yellow taxi parquet file, before
// cleaning. The six columns the cleaning pipeline null-checks are
// pointers so that nulls survive decoding instead of collapsing to
// zero values.
type RawTrip struct {
	PickupDatetime  *time.Time `parquet:"tpep_pickup_datetime,optional"`
	DropoffDatetime *time.Time `parquet:"tpep_dropoff_datetime,optional"`
	PULocationID    *int32     `parquet:"PULocationID,optional"`
	DOLocationID    *int32     `parquet:"DOLocationID,optional"`
	FareAmount      *float64   `parquet:"fare_amount,optional"`
	TripDistance    *float64   `parquet:"trip_distance,optional"`
	TotalAmount     float64    `parquet:"total_amount,optional"`
	PaymentType     int64      `parquet:"payment_type,optional"`
}

// TripRecord is a cleaned, enriched trip. Every instance satisfies the
// post-cleaning invariants: distance > 0, 0 <= fare <= 500, dropoff >=
// pickup, all identifying fields present.
type TripRecord struct {
	PickupDatetime  time.Time `json:"tpep_pickup_datetime"`
	DropoffDatetime time.Time `json:"tpep_dropoff_datetime"`
	PULocationID    int       `json:"pu_location_id"`
	DOLocationID    int       `json:"do_location_id"`
	FareAmount      float64   `json:"fare_amount"`
	TripDistance    float64   `json:"trip_distance"`
	TotalAmount     float64   `json:"total_amount"`
	PaymentType     int       `json:"payment_type"`

	// Derived columns.
	TripDurationMinutes float64 `json:"trip_duration_minutes"`
	TripSpeedMPH        float64 `json:"trip_speed_mph,omitempty"`
	HasSpeed            bool    `json:"-"` // false when duration is zero; speed is undefined, not zero
	PickupHour          int     `json:"pickup_hour"`
	PickupDayOfWeek     string  `json:"pickup_day_of_week"`
}
