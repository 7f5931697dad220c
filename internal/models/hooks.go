package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ids are opaque strings assigned once at creation. Callers may supply their
// own (seed data does); anything else gets a UUID.

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	return u.Validate()
}

func (c *CreditCard) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (c *CreditCard) BeforeSave(tx *gorm.DB) error {
	return c.Validate()
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = StatusCompleted
	}
	if t.TransactionType == "" {
		t.TransactionType = TypePurchase
	}
	return nil
}

func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	return t.Validate()
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (c *Category) BeforeSave(tx *gorm.DB) error {
	return c.Validate()
}

func (r *Reward) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.RewardType == "" {
		r.RewardType = RewardPurchase
	}
	return nil
}

func (r *Reward) BeforeSave(tx *gorm.DB) error {
	return r.Validate()
}
