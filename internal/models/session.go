package models

import "time"

// Session is an opaque token mapping to a user id with an expiry.
// The token itself is the primary key.
type Session struct {
	ID     string `gorm:"primaryKey;size:64" json:"id"`
	UserID uint   `gorm:"not null;index" json:"user_id"`

	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
