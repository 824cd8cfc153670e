package models

import "time"

// IncomeDestination is a user-defined money source/sink label, e.g. a
// bank account name. Names are trimmed and unique per user.
type IncomeDestination struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;size:36;not null;uniqueIndex:idx_dest_user_name" json:"userId"`
	Name      string    `gorm:"size:128;not null;uniqueIndex:idx_dest_user_name" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
