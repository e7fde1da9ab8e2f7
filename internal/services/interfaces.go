package services

import (
	"time"

	"github.com/google/uuid"

	"walletview/internal/components"
	"walletview/internal/models"
)

// PresenterServiceInterface turns transactions into fully derived component
// view models. Pure: the same inputs and clock always produce the same output.
type PresenterServiceInterface interface {
	Row(transaction models.Transaction, tapURL string) components.TransactionRow
	Sections(transactions []models.Transaction, tapURL func(id uuid.UUID) string) []components.TransactionGroup
}

// MetricsRecorderInterface records presentation-layer metrics
type MetricsRecorderInterface interface {
	RecordRender(component string, duration time.Duration)
	RecordActivation(component string, event string)
}

// SeederServiceInterface populates the demo store with generated transactions
type SeederServiceInterface interface {
	Seed(count int) error
}
