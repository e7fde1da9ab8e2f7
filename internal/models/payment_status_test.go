package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatus_Label(t *testing.T) {
	tests := []struct {
		status PaymentStatus
		want   string
	}{
		{PaymentStatusPending, "Pending"},
		{PaymentStatusCompleted, "Completed"},
		{PaymentStatusFailed, "Failed"},
		{PaymentStatusReversed, "Reversed"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.Label())
	}
}

func TestIsValidPaymentStatus(t *testing.T) {
	for _, status := range AllPaymentStatuses() {
		assert.True(t, IsValidPaymentStatus(string(status)))
	}
	assert.False(t, IsValidPaymentStatus("settled"))
	assert.False(t, IsValidPaymentStatus(""))
}
