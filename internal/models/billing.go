package models

import "time"

type SubscriptionPlan struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"size:50;not null" json:"name"`
	Price int    `gorm:"not null" json:"price"` // cents

	CreatedAt time.Time `json:"created_at"`
}

type Subscription struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	ClientID string `gorm:"column:client_id;size:36;index;not null" json:"client_id"`
	PlanID   string `gorm:"column:plan_id;size:36;not null" json:"plan_id"`
	Status   string `gorm:"size:20;default:'active'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

type Invoice struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	ClientID string `gorm:"column:client_id;size:36;index;not null" json:"client_id"`
	Amount   int    `gorm:"not null" json:"amount"`
	Status   string `gorm:"size:20;default:'open'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}

type Payment struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	ClientID string `gorm:"column:client_id;size:36;index;not null" json:"client_id"`
	Amount   int    `gorm:"not null" json:"amount"`
	Status   string `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
}
