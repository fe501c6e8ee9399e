package models

import "time"

type Specialty struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description *string `gorm:"size:255" json:"description"`
	Color       string  `gorm:"size:20;default:'#3B82F6'" json:"color"`

	ServiceID *string `gorm:"column:service_id;size:36" json:"service_id"`
	ClientID  string  `gorm:"column:client_id;size:36;index;not null" json:"client_id"`
	IsActive  bool    `gorm:"column:is_active;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
}
