package models

import "time"

// User represents an application user. IDs are uuid v4 strings assigned
// at registration.
type User struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	FullName        string    `gorm:"size:128;not null" json:"fullName"`
	Email           string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash    string    `gorm:"size:255;not null" json:"-"`
	ProfileImageURL string    `gorm:"size:512" json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
