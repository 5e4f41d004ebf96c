package handler

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/nycdash/taxi-dashboard-go/internal/middleware"
	"github.com/nycdash/taxi-dashboard-go/internal/models"
	"github.com/nycdash/taxi-dashboard-go/internal/service"
	"github.com/nycdash/taxi-dashboard-go/pkg/response"
)

// filterParams are the query keys the filter controls submit.
var filterParams = []string{"startDate", "endDate", "hourFrom", "hourTo", "paymentTypes"}

// DashboardHandler handles HTTP requests for the dashboard
type DashboardHandler struct {
	service *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// resolveFilter builds the request's filter: explicit query params win,
// then the session's saved filter, then the full-dataset default.
// Absent params fall back to the default's value for that control;
// validation of the assembled filter happens in the service.
func (h *DashboardHandler) resolveFilter(c *gin.Context) (*models.TripFilter, error) {
	query := c.Request.URL.Query()

	hasParams := false
	for _, key := range filterParams {
		if query.Has(key) {
			hasParams = true
			break
		}
	}

	if !hasParams {
		if sess := middleware.CurrentSession(c); sess != nil && sess.Filter != nil {
			return sess.Filter, nil
		}
		return h.service.DefaultFilter(), nil
	}

	var f models.TripFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalidFilterInput, err)
	}

	def := h.service.DefaultFilter()
	if !query.Has("startDate") {
		f.StartDate = def.StartDate
	}
	if !query.Has("endDate") {
		f.EndDate = def.EndDate
	}
	if !query.Has("hourTo") {
		f.HourTo = def.HourTo
	}
	if !query.Has("paymentTypes") {
		f.PaymentTypes = def.PaymentTypes
	}
	return &f, nil
}

// renderError maps the error taxonomy to HTTP. Invalid filter input is
// the caller's to correct; an empty result is a valid state, not a
// failure.
func renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidFilterInput):
		response.BadRequest(c, err.Error())
	case errors.Is(err, models.ErrEmptyResult):
		response.Empty(c, "No trips match the selected filters. Please widen your filter selection.")
	default:
		response.InternalError(c, err.Error())
	}
}

// GetFilterOptions handles GET /api/v1/filters/options
func (h *DashboardHandler) GetFilterOptions(c *gin.Context) {
	response.Success(c, h.service.FilterOptions())
}

// GetDashboard handles GET /api/v1/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	f, err := h.resolveFilter(c)
	if err != nil {
		renderError(c, err)
		return
	}

	dashboard, err := h.service.Full(f)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, dashboard)
}

// GetMetrics handles GET /api/v1/dashboard/metrics
func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	f, err := h.resolveFilter(c)
	if err != nil {
		renderError(c, err)
		return
	}

	metrics, err := h.service.Metrics(f)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, metrics)
}

// GetTopZones handles GET /api/v1/dashboard/views/top-zones
func (h *DashboardHandler) GetTopZones(c *gin.Context) {
	h.renderView(c, h.service.TopPickupZones)
}

// GetFareByHour handles GET /api/v1/dashboard/views/fare-by-hour
func (h *DashboardHandler) GetFareByHour(c *gin.Context) {
	h.renderView(c, h.service.AvgFareByHour)
}

// GetDistanceDistribution handles GET /api/v1/dashboard/views/distance-distribution
func (h *DashboardHandler) GetDistanceDistribution(c *gin.Context) {
	h.renderView(c, h.service.DistanceDistribution)
}

// GetPaymentBreakdown handles GET /api/v1/dashboard/views/payment-breakdown
func (h *DashboardHandler) GetPaymentBreakdown(c *gin.Context) {
	h.renderView(c, h.service.PaymentBreakdown)
}

// GetWeekdayHourHeatmap handles GET /api/v1/dashboard/views/weekday-hour-heatmap
func (h *DashboardHandler) GetWeekdayHourHeatmap(c *gin.Context) {
	h.renderView(c, h.service.WeekdayHourHeatmap)
}

func (h *DashboardHandler) renderView(c *gin.Context, view func(*models.TripFilter) (models.ChartSpec, error)) {
	f, err := h.resolveFilter(c)
	if err != nil {
		renderError(c, err)
		return
	}

	chart, err := view(f)
	if err != nil {
		renderError(c, err)
		return
	}
	response.Success(c, chart)
}
