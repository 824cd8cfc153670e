package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single expense record. Source names the IncomeDestination
// the money was paid from, stored as a plain string (see Income.To).
type Expense struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    string          `gorm:"index;size:36;not null" json:"userId"`
	Icon      string          `gorm:"size:64" json:"icon"`
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8);not null" json:"amount"`
	Category  string          `gorm:"size:128;not null" json:"category"`
	Source    string          `gorm:"size:128;not null" json:"source"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
