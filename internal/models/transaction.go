package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrInvalidCategory      = errors.New("invalid transaction category")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrEmptyTitle           = errors.New("transaction title is required")
	ErrZeroDate             = errors.New("transaction date is required")
)

// Transaction represents one entry in the user's activity feed. The amount is
// signed: negative values are expenses, non-negative values are income.
// Transactions are immutable once constructed; the presentation layer only
// reads them.
type Transaction struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Title     string          `gorm:"type:varchar(120);not null" json:"title"`
	Subtitle  string          `gorm:"type:varchar(200)" json:"subtitle,omitempty"`
	Amount    decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Category  Category        `gorm:"type:varchar(30);not null" json:"category"`
	Date      time.Time       `gorm:"not null;index" json:"date"`
	Recurring bool            `gorm:"default:false" json:"recurring"`
	Tags      TagList         `gorm:"type:text" json:"tags,omitempty"`
	Status    PaymentStatus   `gorm:"type:varchar(20);not null;default:'completed'" json:"status"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Status == "" {
		t.Status = PaymentStatusCompleted
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.Title == "" {
		return ErrEmptyTitle
	}

	if !IsValidCategory(string(t.Category)) {
		return ErrInvalidCategory
	}

	if !IsValidPaymentStatus(string(t.Status)) {
		return ErrInvalidPaymentStatus
	}

	if t.Date.IsZero() {
		return ErrZeroDate
	}

	return nil
}

// IsExpense reports whether the transaction is an outgoing payment.
// Derived from the amount sign so the two can never disagree.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// IsIncoming reports whether the transaction adds to the balance.
// A zero amount presents as incoming.
func (t *Transaction) IsIncoming() bool {
	return !t.IsExpense()
}

// AbsAmount returns the unsigned amount for display formatting.
func (t *Transaction) AbsAmount() decimal.Decimal {
	return t.Amount.Abs()
}

// TagList stores a transaction's free-form tags as a JSON array column.
type TagList []string

// Value implements driver.Valuer for gorm serialization.
func (l TagList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for gorm deserialization.
func (l *TagList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into TagList", value)
	}

	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}
