package models

import "time"

const (
	AppointmentScheduled = "scheduled"
	AppointmentConfirmed = "confirmed"
	AppointmentPending   = "pending"
	AppointmentCancelled = "cancelled"
	AppointmentCompleted = "completed"
)

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ClientID       string  `gorm:"column:client_id;size:36;index;not null" json:"client_id"`
	ProfessionalID *string `gorm:"column:professional_id;size:36;index" json:"professional_id"`
	ServiceID      *string `gorm:"column:service_id;size:36" json:"service_id"`
	CustomerID     *string `gorm:"column:customer_id;size:36" json:"customer_id"`

	ScheduledAt time.Time  `gorm:"column:scheduled_at;not null" json:"scheduled_at"`
	StartTime   *time.Time `gorm:"column:start_time" json:"start_time"`
	EndTime     *time.Time `gorm:"column:end_time" json:"end_time"`
	Duration    int        `gorm:"not null" json:"duration"`

	Status string  `gorm:"size:20;default:'scheduled'" json:"status"`
	Notes  *string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
