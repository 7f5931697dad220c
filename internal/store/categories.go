package store

import (
	"context"

	"github.com/santoshmanaguli/finpay-dashboard/internal/models"
	"gorm.io/gorm"
)

// Categories persists Category reference rows.
type Categories struct {
	db *gorm.DB
}

func (s *Categories) Create(ctx context.Context, c *models.Category) error {
	return translateErr(s.db.WithContext(ctx).Create(c).Error, "")
}

func (s *Categories) Get(ctx context.Context, id string) (*models.Category, error) {
	var c models.Category
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translateErr(err, "")
	}
	return &c, nil
}

func (s *Categories) List(ctx context.Context) ([]models.Category, error) {
	cats := make([]models.Category, 0)
	if err := s.db.WithContext(ctx).Order("name").Find(&cats).Error; err != nil {
		return nil, translateErr(err, "")
	}
	return cats, nil
}

func (s *Categories) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Category{}).Count(&n).Error; err != nil {
		return 0, translateErr(err, "")
	}
	return n, nil
}

func (s *Categories) Update(ctx context.Context, c *models.Category) error {
	return translateErr(s.db.WithContext(ctx).Save(c).Error, "")
}

// Delete removes the category; transactions tagged with it are detached, the
// engine nulls their category reference.
func (s *Categories) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return translateErr(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
