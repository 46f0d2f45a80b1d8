package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// ParseTransactionType converts untrusted input into a TransactionType.
// Matching is case-sensitive.
func ParseTransactionType(s string) (TransactionType, error) {
	switch t := TransactionType(s); t {
	case TransactionTypeIncome, TransactionTypeExpense:
		return t, nil
	}
	return "", fmt.Errorf("invalid transaction type %q, must be income or expense", s)
}

// Transaction represents a single income or expense record.
type Transaction struct {
	Base
	UserID      string          `gorm:"type:varchar(36);not null;index" json:"user_id"`
	CategoryID  string          `gorm:"type:varchar(36);not null;index" json:"category_id"`
	Type        TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Description string          `gorm:"type:varchar(200);not null" json:"description"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	Notes       string          `json:"notes"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}
