package repositories

import (
	"errors"
	"fmt"

	"walletview/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates transactions in a single insert, used by the seeder
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}
	if err := r.db.Create(&transactions).Error; err != nil {
		return fmt.Errorf("failed to create transactions: %w", err)
	}
	return nil
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// ListRecent retrieves the most recent transactions ordered by date descending
func (r *transactionRepository) ListRecent(limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Order("date DESC").Limit(limit).Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

// Count returns the total number of stored transactions
func (r *transactionRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}
