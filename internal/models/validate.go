package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FieldError reports a field-level constraint breach detected before any SQL
// is issued. Offending values are rejected, never truncated.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// moneyMax bounds decimal(18,2) columns: 16 integer digits, 2 fractional.
var moneyMax = decimal.New(1, 16)

func required(field, v string, max int) error {
	if v == "" {
		return &FieldError{Field: field, Reason: "is required"}
	}
	return maxLen(field, v, max)
}

func maxLen(field, v string, max int) error {
	if len([]rune(v)) > max {
		return &FieldError{Field: field, Reason: fmt.Sprintf("exceeds max length %d", max)}
	}
	return nil
}

func money(field string, d decimal.Decimal) error {
	if d.Exponent() < -2 {
		return &FieldError{Field: field, Reason: "more than 2 decimal places"}
	}
	if d.Abs().GreaterThanOrEqual(moneyMax) {
		return &FieldError{Field: field, Reason: "out of range for decimal(18,2)"}
	}
	return nil
}

func (u *User) Validate() error {
	if err := required("email", u.Email, 100); err != nil {
		return err
	}
	if err := required("firstName", u.FirstName, 50); err != nil {
		return err
	}
	if err := required("lastName", u.LastName, 50); err != nil {
		return err
	}
	if u.PhoneNumber != nil {
		if err := maxLen("phoneNumber", *u.PhoneNumber, 10); err != nil {
			return err
		}
	}
	return nil
}

func (c *CreditCard) Validate() error {
	if err := required("cardNumberLastFour", c.CardNumberLastFour, 4); err != nil {
		return err
	}
	if err := required("cardHolderName", c.CardHolderName, 100); err != nil {
		return err
	}
	if err := required("cardType", c.CardType, 20); err != nil {
		return err
	}
	for field, d := range map[string]decimal.Decimal{
		"creditLimit":      c.CreditLimit,
		"availableBalance": c.AvailableBalance,
		"currentBalance":   c.CurrentBalance,
	} {
		if err := money(field, d); err != nil {
			return err
		}
	}
	return nil
}

func (t *Transaction) Validate() error {
	if err := money("amount", t.Amount); err != nil {
		return err
	}
	if err := required("description", t.Description, 200); err != nil {
		return err
	}
	if err := maxLen("merchantName", t.MerchantName, 100); err != nil {
		return err
	}
	if err := maxLen("status", t.Status, 20); err != nil {
		return err
	}
	return maxLen("transactionType", t.TransactionType, 50)
}

func (c *Category) Validate() error {
	if err := required("name", c.Name, 50); err != nil {
		return err
	}
	if err := maxLen("description", c.Description, 200); err != nil {
		return err
	}
	if err := maxLen("iconUrl", c.IconUrl, 100); err != nil {
		return err
	}
	return maxLen("color", c.Color, 7)
}

func (r *Reward) Validate() error {
	if err := maxLen("rewardType", r.RewardType, 100); err != nil {
		return err
	}
	return maxLen("description", r.Description, 200)
}
