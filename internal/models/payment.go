package models

// Payment type codes as they appear in the TLC trip data.
const (
	PaymentOther      = 0
	PaymentCreditCard = 1
	PaymentCash       = 2
	PaymentNoCharge   = 3
	PaymentDispute    = 4
)

// PaymentUnknownLabel is the sentinel for codes outside the primary
// mapping. It has no code of its own and never appears in the reverse
// lookup.
const PaymentUnknownLabel = "Unknown"

// paymentLabels is the primary (sidebar) mapping. It is closed: any
// code not listed here renders as PaymentUnknownLabel.
var paymentLabels = map[int]string{
	PaymentCreditCard: "Credit card",
	PaymentCash:       "Cash",
	PaymentNoCharge:   "No charge",
	PaymentDispute:    "Dispute",
	PaymentOther:      "Other",
}

// paymentCodes is the reverse of paymentLabels, used to reconstruct
// codes from the labels the filter controls submit.
var paymentCodes = func() map[string]int {
	m := make(map[string]int, len(paymentLabels))
	for code, label := range paymentLabels {
		m[label] = code
	}
	return m
}()

// PaymentLabel returns the display label for a payment type code.
func PaymentLabel(code int) string {
	if label, ok := paymentLabels[code]; ok {
		return label
	}
	return PaymentUnknownLabel
}

// PaymentCode resolves a display label back to its code. The sentinel
// label does not resolve.
func PaymentCode(label string) (int, bool) {
	code, ok := paymentCodes[label]
	return code, ok
}

// BreakdownLabel is the payment-breakdown view's own case mapping. It
// agrees with PaymentLabel on codes 1-4 but treats code 5 as "Unknown"
// and everything else, including 0, as "Other". The two mappings
// disagree on code 5 on purpose; see DESIGN.md.
func BreakdownLabel(code int) string {
	switch code {
	case PaymentCreditCard:
		return "Credit card"
	case PaymentCash:
		return "Cash"
	case PaymentNoCharge:
		return "No charge"
	case PaymentDispute:
		return "Dispute"
	case 5:
		return "Unknown"
	default:
		return "Other"
	}
}
