package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTransaction() Transaction {
	return Transaction{
		Title:    "Whole Foods Market",
		Amount:   decimal.NewFromFloat(-84.20),
		Category: CategoryGroceries,
		Date:     time.Now(),
		Status:   PaymentStatusCompleted,
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{
			name:   "valid expense",
			mutate: func(tx *Transaction) {},
		},
		{
			name: "valid income",
			mutate: func(tx *Transaction) {
				tx.Amount = decimal.NewFromFloat(5000.00)
				tx.Category = CategoryIncome
			},
		},
		{
			name:    "missing title",
			mutate:  func(tx *Transaction) { tx.Title = "" },
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "unknown category",
			mutate:  func(tx *Transaction) { tx.Category = "crypto" },
			wantErr: ErrInvalidCategory,
		},
		{
			name:    "unknown status",
			mutate:  func(tx *Transaction) { tx.Status = "settled" },
			wantErr: ErrInvalidPaymentStatus,
		},
		{
			name:    "zero date",
			mutate:  func(tx *Transaction) { tx.Date = time.Time{} },
			wantErr: ErrZeroDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)

			err := tx.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_Direction(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		incoming bool
	}{
		{"negative amount is an expense", decimal.NewFromFloat(-1000.00), false},
		{"positive amount is incoming", decimal.NewFromFloat(5000.00), true},
		{"zero amount presents as incoming", decimal.Zero, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tx.Amount = tt.amount

			assert.Equal(t, tt.incoming, tx.IsIncoming())
			assert.Equal(t, !tt.incoming, tx.IsExpense())
			assert.False(t, tx.AbsAmount().IsNegative())
		})
	}
}

func TestTagList_RoundTrip(t *testing.T) {
	tags := TagList{"groceries", "weekly"}

	value, err := tags.Value()
	require.NoError(t, err)

	var scanned TagList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, tags, scanned)
}

func TestTagList_ScanNil(t *testing.T) {
	var tags TagList
	require.NoError(t, tags.Scan(nil))
	assert.Nil(t, tags)
}
