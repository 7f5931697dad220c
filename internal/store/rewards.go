package store

import (
	"context"

	"github.com/santoshmanaguli/finpay-dashboard/internal/models"
	"gorm.io/gorm"
)

// Rewards persists Reward rows. A reward may outlive the transaction that
// earned it; the engine nulls the link on transaction delete.
type Rewards struct {
	db *gorm.DB
}

func (s *Rewards) Create(ctx context.Context, r *models.Reward) error {
	return translateErr(s.db.WithContext(ctx).Create(r).Error, "")
}

func (s *Rewards) Get(ctx context.Context, id string) (*models.Reward, error) {
	var r models.Reward
	if err := s.db.WithContext(ctx).First(&r, "id = ?", id).Error; err != nil {
		return nil, translateErr(err, "")
	}
	return &r, nil
}

func (s *Rewards) ListByUser(ctx context.Context, userID string) ([]models.Reward, error) {
	rewards := make([]models.Reward, 0)
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("earned_date DESC").
		Find(&rewards).Error; err != nil {
		return nil, translateErr(err, "")
	}
	return rewards, nil
}

func (s *Rewards) Update(ctx context.Context, r *models.Reward) error {
	return translateErr(s.db.WithContext(ctx).Save(r).Error, "")
}

func (s *Rewards) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Reward{}, "id = ?", id)
	if res.Error != nil {
		return translateErr(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
