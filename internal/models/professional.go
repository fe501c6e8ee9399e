package models

import "time"

type Professional struct {
	ID    string  `gorm:"primaryKey;size:36" json:"id"`
	Name  string  `gorm:"size:100;not null" json:"name"`
	Email string  `gorm:"size:100;not null" json:"email"`
	Phone *string `gorm:"size:20" json:"phone"`

	SpecialtyID *string `gorm:"column:specialty_id;size:36" json:"specialty_id"`
	ClientID    string  `gorm:"column:client_id;size:36;index;not null" json:"client_id"`
	IsActive    bool    `gorm:"column:is_active;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}
