package store

import (
	"context"

	"github.com/santoshmanaguli/finpay-dashboard/internal/models"
	"gorm.io/gorm"
)

// CreditCards persists CreditCard rows, keyed to their owning user.
type CreditCards struct {
	db *gorm.DB
}

func (s *CreditCards) Create(ctx context.Context, c *models.CreditCard) error {
	return translateErr(s.db.WithContext(ctx).Create(c).Error, "")
}

func (s *CreditCards) Get(ctx context.Context, id string) (*models.CreditCard, error) {
	var c models.CreditCard
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translateErr(err, "")
	}
	return &c, nil
}

func (s *CreditCards) ListByUser(ctx context.Context, userID string) ([]models.CreditCard, error) {
	cards := make([]models.CreditCard, 0)
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&cards).Error; err != nil {
		return nil, translateErr(err, "")
	}
	return cards, nil
}

func (s *CreditCards) Update(ctx context.Context, c *models.CreditCard) error {
	return translateErr(s.db.WithContext(ctx).Save(c).Error, "")
}

func (s *CreditCards) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.CreditCard{}, "id = ?", id)
	if res.Error != nil {
		return translateErr(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
