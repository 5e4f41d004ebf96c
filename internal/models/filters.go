package models

import (
	"fmt"
	"time"
)

// DateFormat is the wire format for calendar dates in filter inputs.
const DateFormat = "2006-01-02"

// TripFilter represents the filter controls as submitted: a pickup
// date range, a pickup hour range and a payment-type multi-select
// (labels, not codes).
type TripFilter struct {
	StartDate    string   `form:"startDate" json:"start_date"`
	EndDate      string   `form:"endDate" json:"end_date"`
	HourFrom     int      `form:"hourFrom" json:"hour_from"`
	HourTo       int      `form:"hourTo" json:"hour_to"`
	PaymentTypes []string `form:"paymentTypes" json:"payment_types"`
}

// FilterQuery is a validated TripFilter with dates parsed and payment
// labels resolved to codes. Only the repository consumes it.
type FilterQuery struct {
	StartDate    time.Time
	EndDate      time.Time
	HourFrom     int
	HourTo       int
	PaymentCodes []int
}

// Validate checks the filter preconditions and resolves it to a
// FilterQuery. All violations wrap ErrInvalidFilterInput so callers
// reject the input before any query runs.
func (f *TripFilter) Validate() (*FilterQuery, error) {
	if f.StartDate == "" || f.EndDate == "" {
		return nil, fmt.Errorf("%w: date range requires both a start and an end date", ErrInvalidFilterInput)
	}

	start, err := time.Parse(DateFormat, f.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: bad start date %q", ErrInvalidFilterInput, f.StartDate)
	}
	end, err := time.Parse(DateFormat, f.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: bad end date %q", ErrInvalidFilterInput, f.EndDate)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: start date %s is after end date %s", ErrInvalidFilterInput, f.StartDate, f.EndDate)
	}

	if f.HourFrom < 0 || f.HourTo > 23 || f.HourFrom > f.HourTo {
		return nil, fmt.Errorf("%w: hour range [%d,%d] must satisfy 0 <= from <= to <= 23", ErrInvalidFilterInput, f.HourFrom, f.HourTo)
	}

	if len(f.PaymentTypes) == 0 {
		return nil, fmt.Errorf("%w: select at least one payment type", ErrInvalidFilterInput)
	}
	codes := make([]int, 0, len(f.PaymentTypes))
	for _, label := range f.PaymentTypes {
		code, ok := PaymentCode(label)
		if !ok {
			return nil, fmt.Errorf("%w: unknown payment type %q", ErrInvalidFilterInput, label)
		}
		codes = append(codes, code)
	}

	return &FilterQuery{
		StartDate:    start,
		EndDate:      end,
		HourFrom:     f.HourFrom,
		HourTo:       f.HourTo,
		PaymentCodes: codes,
	}, nil
}

// FilterOptions describes the control bounds offered to the user:
// the dataset's date span and the payment labels present in it.
type FilterOptions struct {
	MinDate       string   `json:"min_date"`
	MaxDate       string   `json:"max_date"`
	HourMin       int      `json:"hour_min"`
	HourMax       int      `json:"hour_max"`
	PaymentLabels []string `json:"payment_labels"`
}
