package dataset

import (
	"github.com/nycdash/taxi-dashboard-go/internal/models"
)

// Fare bounds a retained trip must satisfy.
const (
	MinFareAmount = 0.0
	MaxFareAmount = 500.0
)

// Clean runs the cleaning and enrichment pipeline over a raw trip
// table: drop rows with a null in any required field, drop rows
// violating the distance/fare bounds, drop rows where dropoff precedes
// pickup, then derive duration, speed, pickup hour and pickup weekday
// for every surviving row.
//
// The pipeline is idempotent: rows it emits pass all of its own
// predicates, so re-running it removes nothing and recomputes
// identical values. Output order follows input order but callers must
// not depend on it.
func Clean(raw []models.RawTrip) []models.TripRecord {
	cleaned := make([]models.TripRecord, 0, len(raw))
	for _, t := range raw {
		if t.PickupDatetime == nil || t.DropoffDatetime == nil ||
			t.PULocationID == nil || t.DOLocationID == nil ||
			t.FareAmount == nil || t.TripDistance == nil {
			continue
		}
		if *t.TripDistance <= 0 {
			continue
		}
		if *t.FareAmount < MinFareAmount || *t.FareAmount > MaxFareAmount {
			continue
		}
		if t.DropoffDatetime.Before(*t.PickupDatetime) {
			continue
		}
		cleaned = append(cleaned, enrich(t))
	}
	return cleaned
}

// enrich derives the computed columns for a row that passed every
// cleaning predicate.
func enrich(t models.RawTrip) models.TripRecord {
	pickup := *t.PickupDatetime
	dropoff := *t.DropoffDatetime

	rec := models.TripRecord{
		PickupDatetime:  pickup,
		DropoffDatetime: dropoff,
		PULocationID:    int(*t.PULocationID),
		DOLocationID:    int(*t.DOLocationID),
		FareAmount:      *t.FareAmount,
		TripDistance:    *t.TripDistance,
		TotalAmount:     t.TotalAmount,
		PaymentType:     int(t.PaymentType),
		PickupHour:      pickup.Hour(),
		PickupDayOfWeek: pickup.Weekday().String(),
	}

	rec.TripDurationMinutes = dropoff.Sub(pickup).Minutes()
	// Speed is undefined for zero-duration trips; it is never zero and
	// never infinite.
	if rec.TripDurationMinutes > 0 {
		rec.TripSpeedMPH = rec.TripDistance / (rec.TripDurationMinutes / 60)
		rec.HasSpeed = true
	}
	return rec
}
