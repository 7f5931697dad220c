package store

import (
	"context"

	"github.com/santoshmanaguli/finpay-dashboard/internal/models"
	"gorm.io/gorm"
)

// Users persists User rows. Email is unique; a duplicate surfaces as
// *ConflictError{Field: "email"}.
type Users struct {
	db *gorm.DB
}

func (s *Users) Create(ctx context.Context, u *models.User) error {
	return translateErr(s.db.WithContext(ctx).Create(u).Error, "email")
}

func (s *Users) Get(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, translateErr(err, "email")
	}
	return &u, nil
}

func (s *Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, translateErr(err, "email")
	}
	return &u, nil
}

// Update saves all fields and touches UpdatedAt.
func (s *Users) Update(ctx context.Context, u *models.User) error {
	return translateErr(s.db.WithContext(ctx).Save(u).Error, "email")
}

// Delete removes the user; the engine cascades to credit cards, their
// transactions, and rewards.
func (s *Users) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		return translateErr(res.Error, "email")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
