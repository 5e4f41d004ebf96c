// Package format renders dashboard numbers for display: thousands
// separators for counts and revenue, fixed two-decimal precision for
// currency, distance and duration figures.
package format

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.English)

// Count formats an integer with thousands separators: 1234567 -> "1,234,567".
func Count(n int64) string {
	return printer.Sprintf("%v", number.Decimal(n))
}

// GroupedAmount formats a monetary amount with thousands separators
// and exactly two decimals: 1234567.8 -> "1,234,567.80".
func GroupedAmount(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Fixed2 formats a value with exactly two decimals and no grouping.
func Fixed2(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
