package models

// SummaryMetrics holds the five scalar aggregates over the working
// set. The raw values are the contract; Display carries the formatted
// strings the metric tiles show.
type SummaryMetrics struct {
	TotalTrips         int64   `json:"total_trips"`
	AvgFare            float64 `json:"avg_fare"`
	TotalRevenue       float64 `json:"total_revenue"`
	AvgTripDistance    float64 `json:"avg_trip_distance"`
	AvgDurationMinutes float64 `json:"avg_duration_minutes"`

	Display MetricsDisplay `json:"display"`
}

// MetricsDisplay is the presentation form of SummaryMetrics: counts
// and revenue with thousands separators, everything monetary or
// physical with two decimal places.
type MetricsDisplay struct {
	TotalTrips         string `json:"total_trips"`
	AvgFare            string `json:"avg_fare"`
	TotalRevenue       string `json:"total_revenue"`
	AvgTripDistance    string `json:"avg_trip_distance"`
	AvgDurationMinutes string `json:"avg_duration_minutes"`
}
