package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/nycdash/taxi-dashboard-go/internal/models"
)

// TripRepository handles database operations over the trip dataset.
// Every aggregation runs against the working set described by a
// validated FilterQuery.
type TripRepository struct {
	db *sql.DB
}

// NewTripRepository creates a new trip repository
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{db: db}
}

// workingSet builds the WHERE clause selecting the filtered working
// set: pickup date and hour inside their closed intervals, payment
// type in the selected set.
func workingSet(q *models.FilterQuery) (string, []interface{}) {
	conditions := []string{
		"pickup_date >= ?",
		"pickup_date <= ?",
		"pickup_hour >= ?",
		"pickup_hour <= ?",
	}
	args := []interface{}{
		q.StartDate.Format(models.DateFormat),
		q.EndDate.Format(models.DateFormat),
		q.HourFrom,
		q.HourTo,
	}

	placeholders := make([]string, len(q.PaymentCodes))
	for i, code := range q.PaymentCodes {
		placeholders[i] = "?"
		args = append(args, code)
	}
	conditions = append(conditions, "payment_type IN ("+strings.Join(placeholders, ",")+")")

	return " WHERE " + strings.Join(conditions, " AND "), args
}

// CountTrips returns the size of the working set.
func (r *TripRepository) CountTrips(q *models.FilterQuery) (int64, error) {
	where, args := workingSet(q)

	var count int64
	err := r.db.QueryRow("SELECT COUNT(*) FROM taxi_trips"+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count trips: %w", err)
	}
	return count, nil
}

// SummaryMetrics computes the five scalar aggregates over the working
// set in a single query. The caller guarantees the set is non-empty.
func (r *TripRepository) SummaryMetrics(q *models.FilterQuery) (*models.SummaryMetrics, error) {
	where, args := workingSet(q)

	query := `SELECT
		COUNT(*),
		COALESCE(AVG(fare_amount), 0),
		COALESCE(SUM(total_amount), 0),
		COALESCE(AVG(trip_distance), 0),
		COALESCE(AVG(trip_duration_minutes), 0)
		FROM taxi_trips` + where

	m := &models.SummaryMetrics{}
	err := r.db.QueryRow(query, args...).Scan(
		&m.TotalTrips, &m.AvgFare, &m.TotalRevenue, &m.AvgTripDistance, &m.AvgDurationMinutes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute summary metrics: %w", err)
	}
	return m, nil
}

// TopPickupZones joins the working set to the zone lookup, counts
// trips per pickup zone and returns the busiest zones. Ties break by
// zone name ascending so the ordering is deterministic.
func (r *TripRepository) TopPickupZones(q *models.FilterQuery, limit int) ([]models.ZoneTripCount, error) {
	where, args := workingSet(q)

	query := `SELECT z.zone, COUNT(*) AS total_trips
		FROM taxi_trips t
		JOIN taxi_zones z ON t.pu_location_id = z.location_id` + where + `
		GROUP BY z.zone
		ORDER BY total_trips DESC, z.zone ASC
		LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query top pickup zones: %w", err)
	}
	defer rows.Close()

	var zones []models.ZoneTripCount
	for rows.Next() {
		var z models.ZoneTripCount
		if err := rows.Scan(&z.Zone, &z.TotalTrips); err != nil {
			return nil, fmt.Errorf("failed to scan zone count: %w", err)
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

// AvgFareByHour returns the mean fare per pickup hour, rounded to two
// decimals, ordered by hour. Hours with no trips produce no row.
func (r *TripRepository) AvgFareByHour(q *models.FilterQuery) ([]models.HourlyFare, error) {
	where, args := workingSet(q)

	query := `SELECT pickup_hour, ROUND(AVG(fare_amount), 2) AS avg_fare_amount
		FROM taxi_trips` + where + `
		GROUP BY pickup_hour
		ORDER BY pickup_hour`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query fare by hour: %w", err)
	}
	defer rows.Close()

	var fares []models.HourlyFare
	for rows.Next() {
		var f models.HourlyFare
		if err := rows.Scan(&f.Hour, &f.AvgFare); err != nil {
			return nil, fmt.Errorf("failed to scan hourly fare: %w", err)
		}
		fares = append(fares, f)
	}
	return fares, rows.Err()
}

// TripDistances returns the distance column of the working set,
// restricted to trips shorter than the given bound. The restriction is
// display-only; it never narrows the canonical working set.
func (r *TripRepository) TripDistances(q *models.FilterQuery, below float64) ([]float64, error) {
	where, args := workingSet(q)

	query := "SELECT trip_distance FROM taxi_trips" + where + " AND trip_distance < ?"
	args = append(args, below)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trip distances: %w", err)
	}
	defer rows.Close()

	var distances []float64
	for rows.Next() {
		var d float64
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan trip distance: %w", err)
		}
		distances = append(distances, d)
	}
	return distances, rows.Err()
}

// PaymentCount is a payment-type group size within the working set.
type PaymentCount struct {
	PaymentType int
	Trips       int64
}

// PaymentCounts groups the working set by payment type, ordered by
// code ascending.
func (r *TripRepository) PaymentCounts(q *models.FilterQuery) ([]PaymentCount, error) {
	where, args := workingSet(q)

	query := `SELECT payment_type, COUNT(*) AS total_trips
		FROM taxi_trips` + where + `
		GROUP BY payment_type
		ORDER BY payment_type`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment counts: %w", err)
	}
	defer rows.Close()

	var counts []PaymentCount
	for rows.Next() {
		var pc PaymentCount
		if err := rows.Scan(&pc.PaymentType, &pc.Trips); err != nil {
			return nil, fmt.Errorf("failed to scan payment count: %w", err)
		}
		counts = append(counts, pc)
	}
	return counts, rows.Err()
}

// WeekdayHourCount is a (day of week, hour) group size within the
// working set. Combinations with no trips produce no row; the heatmap
// view materializes those as zero.
type WeekdayHourCount struct {
	Weekday string
	Hour    int
	Trips   int
}

// WeekdayHourCounts groups the working set by pickup weekday and hour.
func (r *TripRepository) WeekdayHourCounts(q *models.FilterQuery) ([]WeekdayHourCount, error) {
	where, args := workingSet(q)

	query := `SELECT pickup_day_of_week, pickup_hour, COUNT(*) AS total_trips
		FROM taxi_trips` + where + `
		GROUP BY pickup_day_of_week, pickup_hour`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekday/hour counts: %w", err)
	}
	defer rows.Close()

	var counts []WeekdayHourCount
	for rows.Next() {
		var whc WeekdayHourCount
		if err := rows.Scan(&whc.Weekday, &whc.Hour, &whc.Trips); err != nil {
			return nil, fmt.Errorf("failed to scan weekday/hour count: %w", err)
		}
		counts = append(counts, whc)
	}
	return counts, rows.Err()
}

// DatasetBounds returns the dataset's pickup date span and the payment
// type codes present in it, for building the filter controls.
func (r *TripRepository) DatasetBounds() (minDate, maxDate string, codes []int, err error) {
	var min, max sql.NullString
	err = r.db.QueryRow("SELECT MIN(pickup_date), MAX(pickup_date) FROM taxi_trips").Scan(&min, &max)
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to query date bounds: %w", err)
	}
	minDate, maxDate = min.String, max.String

	rows, err := r.db.Query("SELECT DISTINCT payment_type FROM taxi_trips ORDER BY payment_type")
	if err != nil {
		return "", "", nil, fmt.Errorf("failed to query payment codes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var code int
		if err := rows.Scan(&code); err != nil {
			return "", "", nil, fmt.Errorf("failed to scan payment code: %w", err)
		}
		codes = append(codes, code)
	}
	return minDate, maxDate, codes, rows.Err()
}
