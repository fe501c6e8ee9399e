package models

import "time"

// Customer is an end consumer of a tenant (the person being scheduled),
// distinct from Client which is the tenant account itself.
type Customer struct {
	ID      string  `gorm:"primaryKey;size:36" json:"id"`
	Name    string  `gorm:"size:100;not null" json:"name"`
	Email   *string `gorm:"size:100" json:"email"`
	Phone   *string `gorm:"size:20" json:"phone"`
	CpfCnpj *string `gorm:"column:cpf_cnpj;size:20" json:"cpf_cnpj"`
	Notes   *string `gorm:"size:255" json:"notes"`

	ClientID string `gorm:"column:client_id;size:36;index;not null" json:"client_id"`

	CreatedAt time.Time `json:"created_at"`
}
