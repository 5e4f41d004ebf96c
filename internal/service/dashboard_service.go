package service

import (
	"fmt"

	"github.com/nycdash/taxi-dashboard-go/internal/models"
	"github.com/nycdash/taxi-dashboard-go/internal/repository"
	"github.com/nycdash/taxi-dashboard-go/pkg/format"
)

// DashboardService computes the summary metrics and the five
// aggregation views over the filtered working set.
type DashboardService struct {
	repo    *repository.TripRepository
	options models.FilterOptions
}

// NewDashboardService creates the service and caches the dataset
// bounds used to build the filter controls.
func NewDashboardService(repo *repository.TripRepository) (*DashboardService, error) {
	minDate, maxDate, codes, err := repo.DatasetBounds()
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset bounds: %w", err)
	}

	// Every unmapped code shares the sentinel label, so the options
	// list it at most once.
	labels := make([]string, 0, len(codes))
	seen := make(map[string]bool, len(codes))
	for _, code := range codes {
		label := models.PaymentLabel(code)
		if seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}

	return &DashboardService{
		repo: repo,
		options: models.FilterOptions{
			MinDate:       minDate,
			MaxDate:       maxDate,
			HourMin:       0,
			HourMax:       23,
			PaymentLabels: labels,
		},
	}, nil
}

// FilterOptions returns the control bounds for the sidebar.
func (s *DashboardService) FilterOptions() models.FilterOptions {
	return s.options
}

// DefaultFilter is the widest filter the controls allow: the dataset's
// full date span, all hours, every payment label present in the data.
// The sentinel "Unknown" label has no code to map back to, so it can
// appear in the options but never in a selection.
func (s *DashboardService) DefaultFilter() *models.TripFilter {
	labels := make([]string, 0, len(s.options.PaymentLabels))
	for _, label := range s.options.PaymentLabels {
		if _, ok := models.PaymentCode(label); ok {
			labels = append(labels, label)
		}
	}
	return &models.TripFilter{
		StartDate:    s.options.MinDate,
		EndDate:      s.options.MaxDate,
		HourFrom:     0,
		HourTo:       23,
		PaymentTypes: labels,
	}
}

// workingSet validates the filter and rejects an empty result before
// any aggregation runs.
func (s *DashboardService) workingSet(f *models.TripFilter) (*models.FilterQuery, error) {
	q, err := f.Validate()
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountTrips(q)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, models.ErrEmptyResult
	}
	return q, nil
}

// Metrics computes the five scalar aggregates over the working set and
// their display strings.
func (s *DashboardService) Metrics(f *models.TripFilter) (*models.SummaryMetrics, error) {
	q, err := s.workingSet(f)
	if err != nil {
		return nil, err
	}
	return s.metrics(q)
}

func (s *DashboardService) metrics(q *models.FilterQuery) (*models.SummaryMetrics, error) {
	m, err := s.repo.SummaryMetrics(q)
	if err != nil {
		return nil, err
	}

	m.Display = models.MetricsDisplay{
		TotalTrips:         format.Count(m.TotalTrips),
		AvgFare:            format.Fixed2(m.AvgFare),
		TotalRevenue:       format.GroupedAmount(m.TotalRevenue),
		AvgTripDistance:    format.Fixed2(m.AvgTripDistance),
		AvgDurationMinutes: format.Fixed2(m.AvgDurationMinutes),
	}
	return m, nil
}

// Dashboard is the combined payload: metrics plus all five charts.
type Dashboard struct {
	Metrics *models.SummaryMetrics `json:"metrics"`
	Charts  []models.ChartSpec     `json:"charts"`
}

// Full computes the entire dashboard for one filter in a single pass:
// the filter is validated once and every view runs against the same
// working set.
func (s *DashboardService) Full(f *models.TripFilter) (*Dashboard, error) {
	q, err := s.workingSet(f)
	if err != nil {
		return nil, err
	}

	m, err := s.metrics(q)
	if err != nil {
		return nil, err
	}

	views := []func(*models.FilterQuery) (models.ChartSpec, error){
		s.topPickupZones,
		s.avgFareByHour,
		s.distanceDistribution,
		s.paymentBreakdown,
		s.weekdayHourHeatmap,
	}

	charts := make([]models.ChartSpec, 0, len(views))
	for _, view := range views {
		chart, err := view(q)
		if err != nil {
			return nil, err
		}
		charts = append(charts, chart)
	}

	return &Dashboard{Metrics: m, Charts: charts}, nil
}

// TopPickupZones renders the busiest-pickup-zones view.
func (s *DashboardService) TopPickupZones(f *models.TripFilter) (models.ChartSpec, error) {
	return s.view(f, s.topPickupZones)
}

// AvgFareByHour renders the average-fare-by-hour view.
func (s *DashboardService) AvgFareByHour(f *models.TripFilter) (models.ChartSpec, error) {
	return s.view(f, s.avgFareByHour)
}

// DistanceDistribution renders the trip-distance histogram view.
func (s *DashboardService) DistanceDistribution(f *models.TripFilter) (models.ChartSpec, error) {
	return s.view(f, s.distanceDistribution)
}

// PaymentBreakdown renders the payment-type share view.
func (s *DashboardService) PaymentBreakdown(f *models.TripFilter) (models.ChartSpec, error) {
	return s.view(f, s.paymentBreakdown)
}

// WeekdayHourHeatmap renders the day-of-week by hour heatmap view.
func (s *DashboardService) WeekdayHourHeatmap(f *models.TripFilter) (models.ChartSpec, error) {
	return s.view(f, s.weekdayHourHeatmap)
}

func (s *DashboardService) view(f *models.TripFilter, fn func(*models.FilterQuery) (models.ChartSpec, error)) (models.ChartSpec, error) {
	q, err := s.workingSet(f)
	if err != nil {
		return models.ChartSpec{}, err
	}
	return fn(q)
}
