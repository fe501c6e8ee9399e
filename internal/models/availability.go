package models

import "time"

// ProfessionalAvailability is one bookable day slot for a professional.
// Rows are materialized per month from the professional's weekly template.
type ProfessionalAvailability struct {
	ID             string `gorm:"primaryKey;size:36" json:"id"`
	ProfessionalID string `gorm:"column:professional_id;size:36;index;not null" json:"professional_id"`
	ClientID       string `gorm:"column:client_id;size:36;index;not null" json:"client_id"`

	Date      string `gorm:"size:10;not null" json:"date"` // YYYY-MM-DD
	Weekday   int    `json:"weekday"`
	StartTime string `gorm:"column:start_time;size:5" json:"start_time"` // HH:MM
	EndTime   string `gorm:"column:end_time;size:5" json:"end_time"`
	IsActive  bool   `gorm:"column:is_active;default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
