package models

// Chart types emitted by the aggregation views.
const (
	ChartTypeBar       = "bar"
	ChartTypeLine      = "line"
	ChartTypeHistogram = "histogram"
	ChartTypeHeatmap   = "heatmap"
)

// Encoding names the fields of a chart's data table bound to each
// visual channel.
type Encoding struct {
	X     string `json:"x"`
	Y     string `json:"y"`
	Color string `json:"color,omitempty"`
}

// Axis carries display hints for one chart axis.
type Axis struct {
	Label      string `json:"label"`
	TickPrefix string `json:"tick_prefix,omitempty"`
	TickSuffix string `json:"tick_suffix,omitempty"`
	TickFormat string `json:"tick_format,omitempty"`
}

// ChartSpec is the contract between an aggregation view and the
// presentation shell: the small result table plus enough encoding
// metadata to render it. Rendering itself is out of scope here.
type ChartSpec struct {
	Type     string      `json:"type"`
	Title    string      `json:"title"`
	Data     interface{} `json:"data"`
	Encoding Encoding    `json:"encoding"`
	XAxis    Axis        `json:"x_axis"`
	YAxis    Axis        `json:"y_axis"`
}

// ZoneTripCount is one row of the top-pickup-zones view.
type ZoneTripCount struct {
	Zone       string `json:"pickup_zone"`
	TotalTrips int64  `json:"total_trips"`
}

// HourlyFare is one row of the average-fare-by-hour view. Hours with
// no trips in the working set have no row at all.
type HourlyFare struct {
	Hour    int     `json:"pickup_hour"`
	AvgFare float64 `json:"avg_fare_amount"`
}

// DistanceBin is one histogram bucket of the trip-distance view.
type DistanceBin struct {
	Start float64 `json:"bin_start"`
	End   float64 `json:"bin_end"`
	Count int     `json:"count"`
}

// DistanceDistribution is the trip-distance view's result: equal-width
// bins over the restricted subset plus the median for an overlay
// marker.
type DistanceDistribution struct {
	Bins           []DistanceBin `json:"bins"`
	MedianDistance float64       `json:"median_distance"`
	MaxDistance    float64       `json:"max_distance"`
	TripCount      int           `json:"trip_count"`
}

// PaymentShare is one row of the payment-type breakdown view.
type PaymentShare struct {
	PaymentType int     `json:"payment_type"`
	Label       string  `json:"payment_method"`
	Trips       int64   `json:"total_trips"`
	Percentage  float64 `json:"percentage_of_trips"`
}

// WeekdayHourMatrix is the day-of-week by hour heatmap: a dense 7x24
// count matrix, rows Monday through Sunday, columns hour 0 through 23.
// Absent (day,hour) combinations are materialized as zero.
type WeekdayHourMatrix struct {
	Weekdays []string `json:"weekdays"`
	Hours    []int    `json:"hours"`
	Counts   [][]int  `json:"counts"`
}
