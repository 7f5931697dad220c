package store

import (
	"context"

	"github.com/santoshmanaguli/finpay-dashboard/internal/models"
	"gorm.io/gorm"
)

// Transactions persists Transaction rows, keyed to a credit card and
// optionally tagged with a category.
type Transactions struct {
	db *gorm.DB
}

func (s *Transactions) Create(ctx context.Context, t *models.Transaction) error {
	return translateErr(s.db.WithContext(ctx).Create(t).Error, "")
}

func (s *Transactions) Get(ctx context.Context, id string) (*models.Transaction, error) {
	var t models.Transaction
	if err := s.db.WithContext(ctx).First(&t, "id = ?", id).Error; err != nil {
		return nil, translateErr(err, "")
	}
	return &t, nil
}

func (s *Transactions) ListByCard(ctx context.Context, cardID string) ([]models.Transaction, error) {
	txs := make([]models.Transaction, 0)
	if err := s.db.WithContext(ctx).
		Where("card_id = ?", cardID).
		Order("transaction_date DESC").
		Find(&txs).Error; err != nil {
		return nil, translateErr(err, "")
	}
	return txs, nil
}

func (s *Transactions) ListByCategory(ctx context.Context, categoryID string) ([]models.Transaction, error) {
	txs := make([]models.Transaction, 0)
	if err := s.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("transaction_date DESC").
		Find(&txs).Error; err != nil {
		return nil, translateErr(err, "")
	}
	return txs, nil
}

func (s *Transactions) Update(ctx context.Context, t *models.Transaction) error {
	return translateErr(s.db.WithContext(ctx).Save(t).Error, "")
}

// Delete removes the transaction; rewards pointing at it keep their row with
// the link nulled by the engine.
func (s *Transactions) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Transaction{}, "id = ?", id)
	if res.Error != nil {
		return translateErr(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
