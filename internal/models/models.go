package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction status values.
const (
	StatusCompleted = "Completed"
	StatusPending   = "Pending"
	StatusFailed    = "Failed"
)

// Transaction type values.
const (
	TypePurchase = "Purchase"
	TypeRefund   = "Refund"
	TypePayment  = "Payment"
)

// Reward type values.
const (
	RewardPurchase = "Purchase"
	RewardBonus    = "Bonus"
	RewardReferral = "Referral"
)

type User struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Email       string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	FirstName   string    `gorm:"size:50;not null" json:"firstName"`
	LastName    string    `gorm:"size:50;not null" json:"lastName"`
	PhoneNumber *string   `gorm:"size:10" json:"phoneNumber,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type CreditCard struct {
	ID                 string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID             string          `gorm:"type:varchar(36);index;not null" json:"userId"`
	CardNumberLastFour string          `gorm:"size:4;not null" json:"cardNumberLastFour"`
	CardHolderName     string          `gorm:"size:100;not null" json:"cardHolderName"`
	ExpiryDate         time.Time       `gorm:"not null" json:"expiryDate"`
	CardType           string          `gorm:"size:20;not null" json:"cardType"`
	CreditLimit        decimal.Decimal `gorm:"type:decimal(18,2)" json:"creditLimit"`
	AvailableBalance   decimal.Decimal `gorm:"type:decimal(18,2)" json:"availableBalance"`
	CurrentBalance     decimal.Decimal `gorm:"type:decimal(18,2)" json:"currentBalance"`
	IsActive           bool            `gorm:"default:true" json:"isActive"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`

	// Reference only, carries the delete rule for migration. Never preloaded.
	User User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Transaction struct {
	ID              string          `gorm:"type:varchar(36);primaryKey" json:"id"`
	CardID          string          `gorm:"type:varchar(36);index;not null" json:"cardId"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Description     string          `gorm:"size:200;not null" json:"description"`
	CategoryID      *string         `gorm:"type:varchar(36);index" json:"categoryId"`
	MerchantName    string          `gorm:"size:100" json:"merchantName"`
	TransactionDate time.Time       `json:"transactionDate"`
	Status          string          `gorm:"size:20;not null" json:"status"`
	TransactionType string          `gorm:"size:50;not null" json:"transactionType"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`

	CreditCard CreditCard `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"-"`
	Category   *Category  `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}

type Category struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name        string    `gorm:"size:50;not null" json:"name"`
	Description string    `gorm:"size:200" json:"description"`
	IconUrl     string    `gorm:"size:100" json:"iconUrl"`
	Color       string    `gorm:"size:7;default:'#000000'" json:"color"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

type Reward struct {
	ID             string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	UserID         string     `gorm:"type:varchar(36);index;not null" json:"userId"`
	TransactionID  *string    `gorm:"type:varchar(36);index" json:"transactionId"`
	PointsEarned   int        `gorm:"default:0" json:"pointsEarned"`
	PointsRedeemed int        `gorm:"default:0" json:"pointsRedeemed"`
	RewardType     string     `gorm:"size:100;not null" json:"rewardType"`
	Description    string     `gorm:"size:200" json:"description"`
	EarnedDate     time.Time  `gorm:"autoCreateTime" json:"earnedDate"`
	RedeemedDate   *time.Time `json:"redeemedDate,omitempty"`

	User        User         `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Transaction *Transaction `gorm:"constraint:OnDelete:SET NULL" json:"-"`
}
