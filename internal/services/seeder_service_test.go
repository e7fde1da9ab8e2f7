package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"walletview/internal/models"
	"walletview/internal/repositories"
)

// fakeRepo captures created transactions in memory.
type fakeRepo struct {
	stored []models.Transaction
}

func (r *fakeRepo) Create(tx *models.Transaction) error {
	r.stored = append(r.stored, *tx)
	return nil
}

func (r *fakeRepo) CreateBatch(txs []models.Transaction) error {
	r.stored = append(r.stored, txs...)
	return nil
}

func (r *fakeRepo) GetByID(id uuid.UUID) (*models.Transaction, error) {
	for i := range r.stored {
		if r.stored[i].ID == id {
			return &r.stored[i], nil
		}
	}
	return nil, repositories.ErrTransactionNotFound
}

func (r *fakeRepo) ListRecent(limit int) ([]models.Transaction, error) {
	if limit > len(r.stored) {
		limit = len(r.stored)
	}
	return r.stored[:limit], nil
}

func (r *fakeRepo) Count() (int64, error) {
	return int64(len(r.stored)), nil
}

func TestSeeder_Seed(t *testing.T) {
	repo := &fakeRepo{}
	seeder := NewSeederService(repo, 42)

	require.NoError(t, seeder.Seed(20))

	// 20 generated expenses plus the guaranteed salary credit.
	require.Len(t, repo.stored, 21)

	sawIncoming := false
	for _, tx := range repo.stored {
		assert.NotEmpty(t, tx.Title)
		assert.True(t, models.IsValidCategory(string(tx.Category)))
		assert.True(t, models.IsValidPaymentStatus(string(tx.Status)))
		assert.False(t, tx.Date.IsZero())
		if tx.IsIncoming() {
			sawIncoming = true
		}
	}
	assert.True(t, sawIncoming, "seed should always include an incoming transaction")
}

func TestSeeder_SkipsWhenDataExists(t *testing.T) {
	repo := &fakeRepo{stored: []models.Transaction{{Title: "existing"}}}
	seeder := NewSeederService(repo, 42)

	require.NoError(t, seeder.Seed(20))
	assert.Len(t, repo.stored, 1)
}

func TestSeeder_Deterministic(t *testing.T) {
	first := &fakeRepo{}
	second := &fakeRepo{}

	require.NoError(t, NewSeederService(first, 7).Seed(5))
	require.NoError(t, NewSeederService(second, 7).Seed(5))

	require.Equal(t, len(first.stored), len(second.stored))
	for i := range first.stored {
		assert.Equal(t, first.stored[i].Title, second.stored[i].Title)
		assert.True(t, first.stored[i].Amount.Equal(second.stored[i].Amount))
	}
}
