package service

import (
	"github.com/nycdash/taxi-dashboard-go/internal/models"
	"github.com/nycdash/taxi-dashboard-go/internal/repository"
	"github.com/nycdash/taxi-dashboard-go/internal/stats"
)

const (
	topZonesLimit = 10

	// Display-only restriction for the distance histogram; it never
	// narrows the canonical working set.
	distanceDisplayCap = 50.0
	distanceBinCount   = 100
)

// weekdayOrder fixes the heatmap row order.
var weekdayOrder = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

func (s *DashboardService) topPickupZones(q *models.FilterQuery) (models.ChartSpec, error) {
	zones, err := s.repo.TopPickupZones(q, topZonesLimit)
	if err != nil {
		return models.ChartSpec{}, err
	}

	return models.ChartSpec{
		Type:  models.ChartTypeBar,
		Title: "Top 10 Pickup Zones by Trip Count",
		Data:  zones,
		Encoding: models.Encoding{
			X:     "total_trips",
			Y:     "pickup_zone",
			Color: "total_trips",
		},
		XAxis: models.Axis{Label: "Total Trips"},
		YAxis: models.Axis{Label: "Pickup Zone"},
	}, nil
}

func (s *DashboardService) avgFareByHour(q *models.FilterQuery) (models.ChartSpec, error) {
	fares, err := s.repo.AvgFareByHour(q)
	if err != nil {
		return models.ChartSpec{}, err
	}

	return models.ChartSpec{
		Type:  models.ChartTypeLine,
		Title: "Average Fare by Hour of Day",
		Data:  fares,
		Encoding: models.Encoding{
			X: "pickup_hour",
			Y: "avg_fare_amount",
		},
		XAxis: models.Axis{Label: "Hour of Day"},
		YAxis: models.Axis{Label: "Average Fare", TickPrefix: "$", TickFormat: ".2f"},
	}, nil
}

func (s *DashboardService) distanceDistribution(q *models.FilterQuery) (models.ChartSpec, error) {
	distances, err := s.repo.TripDistances(q, distanceDisplayCap)
	if err != nil {
		return models.ChartSpec{}, err
	}

	dist := models.DistanceDistribution{TripCount: len(distances)}
	if len(distances) > 0 {
		var max float64
		for _, d := range distances {
			if d > max {
				max = d
			}
		}
		dist.MaxDistance = max
		dist.MedianDistance = stats.Median(distances)
		for _, b := range stats.FixedWidthBins(distances, distanceBinCount, 0, max) {
			dist.Bins = append(dist.Bins, models.DistanceBin{Start: b.Start, End: b.End, Count: b.Count})
		}
	}

	return models.ChartSpec{
		Type:  models.ChartTypeHistogram,
		Title: "Distribution of Trip Distances",
		Data:  dist,
		Encoding: models.Encoding{
			X: "trip_distance",
			Y: "count",
		},
		XAxis: models.Axis{Label: "Trip Distance (miles)", TickFormat: ".1f"},
		YAxis: models.Axis{Label: "Number of Trips"},
	}, nil
}

func (s *DashboardService) paymentBreakdown(q *models.FilterQuery) (models.ChartSpec, error) {
	counts, err := s.repo.PaymentCounts(q)
	if err != nil {
		return models.ChartSpec{}, err
	}

	var total int64
	for _, pc := range counts {
		total += pc.Trips
	}

	shares := make([]models.PaymentShare, 0, len(counts))
	for _, pc := range counts {
		shares = append(shares, models.PaymentShare{
			PaymentType: pc.PaymentType,
			Label:       models.BreakdownLabel(pc.PaymentType),
			Trips:       pc.Trips,
			Percentage:  stats.Round2(float64(pc.Trips) * 100 / float64(total)),
		})
	}

	return models.ChartSpec{
		Type:  models.ChartTypeBar,
		Title: "Payment Type Breakdown",
		Data:  shares,
		Encoding: models.Encoding{
			X:     "percentage_of_trips",
			Y:     "payment_method",
			Color: "percentage_of_trips",
		},
		XAxis: models.Axis{Label: "Percentage of Trips", TickSuffix: "%"},
		YAxis: models.Axis{Label: "Payment Method"},
	}, nil
}

func (s *DashboardService) weekdayHourHeatmap(q *models.FilterQuery) (models.ChartSpec, error) {
	counts, err := s.repo.WeekdayHourCounts(q)
	if err != nil {
		return models.ChartSpec{}, err
	}

	matrix := buildWeekdayHourMatrix(counts)

	return models.ChartSpec{
		Type:  models.ChartTypeHeatmap,
		Title: "Taxi Trip Volume: Hour of Day vs Day of Week",
		Data:  matrix,
		Encoding: models.Encoding{
			X:     "hour",
			Y:     "weekday",
			Color: "trip_count",
		},
		XAxis: models.Axis{Label: "Hour of Day"},
		YAxis: models.Axis{Label: "Day of Week"},
	}, nil
}

// buildWeekdayHourMatrix pivots sparse (weekday, hour) counts into the
// dense 7x24 matrix the heatmap renders. Unlike the hourly fare view,
// absence here means zero trips and is materialized as such.
func buildWeekdayHourMatrix(counts []repository.WeekdayHourCount) models.WeekdayHourMatrix {
	rowIndex := make(map[string]int, len(weekdayOrder))
	for i, day := range weekdayOrder {
		rowIndex[day] = i
	}

	grid := make([][]int, len(weekdayOrder))
	for i := range grid {
		grid[i] = make([]int, 24)
	}
	for _, c := range counts {
		row, ok := rowIndex[c.Weekday]
		if !ok || c.Hour < 0 || c.Hour > 23 {
			continue
		}
		grid[row][c.Hour] = c.Trips
	}

	hours := make([]int, 24)
	for h := range hours {
		hours[h] = h
	}

	return models.WeekdayHourMatrix{
		Weekdays: weekdayOrder,
		Hours:    hours,
		Counts:   grid,
	}
}
