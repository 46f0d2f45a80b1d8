package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinancialGoal is a savings target. Progress is derived on read and never stored.
type FinancialGoal struct {
	Base
	UserID        string          `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Name          string          `gorm:"type:varchar(200);not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0" json:"current_amount"`
	Deadline      *time.Time      `gorm:"type:date" json:"deadline,omitempty"`
	Description   string          `json:"description"`
	IsActive      bool            `gorm:"default:true" json:"is_active"`
}

// TableName keeps the table name stable regardless of GORM's pluralizer.
func (FinancialGoal) TableName() string {
	return "financial_goals"
}
