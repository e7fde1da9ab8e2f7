package repositories

import (
	"walletview/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the data access contract for
// transactions. The presentation layer only reads; Create and CreateBatch
// exist for seeding and the demo data owner.
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	ListRecent(limit int) ([]models.Transaction, error)
	Count() (int64, error)
}
