package models

import "time"

// Client is a tenant account (salon/clinic). Every tenant-scoped entity
// carries its id as a foreign key.
type Client struct {
	ID    string  `gorm:"primaryKey;size:36" json:"id"`
	Name  string  `gorm:"size:100;not null" json:"name"`
	Email string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone *string `gorm:"size:20" json:"phone"`

	IsActive            bool    `gorm:"column:is_active;default:true" json:"is_active"`
	ServiceType         *string `gorm:"column:service_type;size:50" json:"service_type"`
	WhatsappInstanceURL *string `gorm:"column:whatsapp_instance_url;size:255" json:"whatsapp_instance_url"`
	Settings            *string `gorm:"type:text" json:"settings"`
	AssistantID         *string `gorm:"column:assistant_id;size:100" json:"assistant_id"`
	PasswordHash        *string `gorm:"column:password;size:255" json:"-"`
	PromptIA            *string `gorm:"column:prompt_ia;type:text" json:"prompt_ia"`
	AgentName           *string `gorm:"column:agent_name;size:100" json:"agent_name"`

	Plan            string  `gorm:"size:20;default:'basic'" json:"plan"`
	MaxUsers        int     `gorm:"column:max_users;default:5" json:"max_users"`
	MaxAppointments int     `gorm:"column:max_appointments;default:100" json:"max_appointments"`
	MaxStorage      int     `gorm:"column:max_storage;default:1" json:"max_storage"`
	CustomDomain    *string `gorm:"column:custom_domain;size:255" json:"custom_domain"`

	BrandingSettings *string `gorm:"column:branding_settings;type:text" json:"branding_settings"`
	BusinessHours    *string `gorm:"column:business_hours;type:text" json:"business_hours"`
	Timezone         string  `gorm:"size:50;default:'America/Sao_Paulo'" json:"timezone"`
	Language         string  `gorm:"size:10;default:'pt-BR'" json:"language"`
	Currency         string  `gorm:"size:10;default:'BRL'" json:"currency"`

	TwoFactorEnabled      bool `gorm:"column:two_factor_enabled;default:false" json:"two_factor_enabled"`
	SessionTimeout        int  `gorm:"column:session_timeout;default:24" json:"session_timeout"`
	EmailNotifications    bool `gorm:"column:email_notifications;default:true" json:"email_notifications"`
	SmsNotifications      bool `gorm:"column:sms_notifications;default:false" json:"sms_notifications"`
	WhatsappNotifications bool `gorm:"column:whatsapp_notifications;default:true" json:"whatsapp_notifications"`

	AutoBackup        bool    `gorm:"column:auto_backup;default:true" json:"auto_backup"`
	BackupFrequency   string  `gorm:"column:backup_frequency;size:20;default:'daily'" json:"backup_frequency"`
	Integrations      *string `gorm:"type:text" json:"integrations"`
	GdprCompliant     bool    `gorm:"column:gdpr_compliant;default:true" json:"gdpr_compliant"`
	DataRetentionDays int     `gorm:"column:data_retention_days;default:365" json:"data_retention_days"`

	CreatedAt time.Time `json:"created_at"`
}
