package models

import "time"

// Connection binds one tenant to an external messaging-channel instance
// (WhatsApp gateway). Ids are sequential, unlike the UUID-keyed entities.
type Connection struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Instance string `gorm:"size:100;not null" json:"instance"`
	Token    string `gorm:"size:512;not null" json:"token"`
	Host     string `gorm:"size:255;not null" json:"host"`

	ClientID string `gorm:"column:client_id;size:36;index;not null" json:"client_id"`
	IsActive bool   `gorm:"column:is_active;default:true" json:"is_active"`

	LastSync  *time.Time `gorm:"column:last_sync" json:"last_sync"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
