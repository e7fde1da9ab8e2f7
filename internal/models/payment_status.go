package models

// PaymentStatus is the closed set of payment settlement states.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusReversed  PaymentStatus = "reversed"
)

var paymentStatusLabels = map[PaymentStatus]string{
	PaymentStatusPending:   "Pending",
	PaymentStatusCompleted: "Completed",
	PaymentStatusFailed:    "Failed",
	PaymentStatusReversed:  "Reversed",
}

// AllPaymentStatuses returns every payment status variant.
func AllPaymentStatuses() []PaymentStatus {
	return []PaymentStatus{
		PaymentStatusPending,
		PaymentStatusCompleted,
		PaymentStatusFailed,
		PaymentStatusReversed,
	}
}

// IsValidPaymentStatus checks if a status string is a registered variant.
func IsValidPaymentStatus(status string) bool {
	_, ok := paymentStatusLabels[PaymentStatus(status)]
	return ok
}

// Label returns the human-readable status text shown under the row title.
func (s PaymentStatus) Label() string {
	if label, ok := paymentStatusLabels[s]; ok {
		return label
	}
	return paymentStatusLabels[PaymentStatusPending]
}
