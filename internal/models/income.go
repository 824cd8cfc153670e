package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is a single income record. To optionally names an
// IncomeDestination by its current name; it is stored as a plain string,
// not a foreign key, so it may become dangling if the destination is
// later deleted or renamed.
type Income struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	UserID    string          `gorm:"index;size:36;not null" json:"userId"`
	Icon      string          `gorm:"size:64" json:"icon"`
	Amount    decimal.Decimal `gorm:"type:DECIMAL(20,8);not null" json:"amount"`
	Source    string          `gorm:"size:128;not null" json:"source"`
	To        string          `gorm:"size:128" json:"to"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
