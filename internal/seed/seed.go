package seed

import (
	"errors"
	"fmt"

	"github.com/santoshmanaguli/finpay-dashboard/internal/logger"
	"github.com/santoshmanaguli/finpay-dashboard/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// categories is the fixed reference set. Ids are literal so re-running the
// seed is a no-op once they exist; application code may add more categories
// but these five are always present after startup.
var categories = []models.Category{
	{
		ID:          "cat-1",
		Name:        "Food & Dining",
		Description: "Restaurants, cafes, and food delivery",
		IconUrl:     "🍽️",
		Color:       "#FF6B6B",
		IsActive:    true,
	},
	{
		ID:          "cat-2",
		Name:        "Transportation",
		Description: "Gas, public transport, rideshares",
		IconUrl:     "🚗",
		Color:       "#4ECDC4",
		IsActive:    true,
	},
	{
		ID:          "cat-3",
		Name:        "Shopping",
		Description: "Retail, online shopping, clothing",
		IconUrl:     "🛍️",
		Color:       "#45B7D1",
		IsActive:    true,
	},
	{
		ID:          "cat-4",
		Name:        "Entertainment",
		Description: "Movies, games, subscriptions",
		IconUrl:     "🎬",
		Color:       "#96CEB4",
		IsActive:    true,
	},
	{
		ID:          "cat-5",
		Name:        "Bills & Utilities",
		Description: "Electricity, water, internet, phone",
		IconUrl:     "📄",
		Color:       "#FFEAA7",
		IsActive:    true,
	},
}

// Run ensures the reference categories exist. A stored row whose content
// diverges from the fixture under the same id is a configuration error, not
// something to overwrite; the caller should treat it as fatal.
func Run(db *gorm.DB) error {
	var created int
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, want := range categories {
			var got models.Category
			err := tx.First(&got, "id = ?", want.ID).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				c := want
				if err := tx.Create(&c).Error; err != nil {
					return fmt.Errorf("seed category %s: %w", want.ID, err)
				}
				created++
			case err != nil:
				return fmt.Errorf("seed check %s: %w", want.ID, err)
			default:
				if got.Name != want.Name || got.Description != want.Description ||
					got.IconUrl != want.IconUrl || got.Color != want.Color {
					return fmt.Errorf("seed category %s exists with divergent content", want.ID)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if created > 0 {
		logger.Log.Info("seeded reference categories", zap.Int("created", created))
	} else {
		logger.Log.Info("seed already applied, skipping")
	}
	return nil
}
