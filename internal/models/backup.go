package models

import "time"

type Backup struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	ClientID string `gorm:"column:client_id;size:36;index;not null" json:"client_id"`
	Status   string `gorm:"size:20;default:'completed'" json:"status"`
	Location string `gorm:"size:255" json:"location"`
	Size     int64  `json:"size"`

	CreatedAt time.Time `json:"created_at"`
}
