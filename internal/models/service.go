package models

import "time"

type Service struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Category    *string `gorm:"size:50" json:"category"`
	Description *string `gorm:"size:255" json:"description"`

	// Duration in minutes, price in cents.
	Duration int  `gorm:"not null" json:"duration"`
	Price    *int `json:"price"`

	SpecialtyID *string `gorm:"column:specialty_id;size:36" json:"specialty_id"`
	ClientID    string  `gorm:"column:client_id;size:36;index;not null" json:"client_id"`
	IsActive    bool    `gorm:"column:is_active;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}
