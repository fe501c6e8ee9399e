package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/semprecheioapp/semprecheio-api/internal/models"
)

// Insert types carry the caller-supplied fields of a create call. Optional
// fields whose default is not the zero value are pointers; the Build*
// helpers below materialize the defaults so both backends produce
// identical records.

type InsertUser struct {
	Name     string  `json:"name" binding:"required"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Role     *string `json:"role"`
}

type InsertClient struct {
	Name  string  `json:"name" binding:"required"`
	Email string  `json:"email" binding:"required,email"`
	Phone *string `json:"phone"`

	IsActive            *bool   `json:"is_active"`
	ServiceType         *string `json:"service_type"`
	WhatsappInstanceURL *string `json:"whatsapp_instance_url"`
	Settings            *string `json:"settings"`
	AssistantID         *string `json:"assistant_id"`
	Password            *string `json:"password"`
	PromptIA            *string `json:"prompt_ia"`
	AgentName           *string `json:"agent_name"`

	Plan            *string `json:"plan"`
	MaxUsers        *int    `json:"max_users"`
	MaxAppointments *int    `json:"max_appointments"`
	MaxStorage      *int    `json:"max_storage"`
	CustomDomain    *string `json:"custom_domain"`

	BrandingSettings *string `json:"branding_settings"`
	BusinessHours    *string `json:"business_hours"`
	Timezone         *string `json:"timezone"`
	Language         *string `json:"language"`
	Currency         *string `json:"currency"`

	TwoFactorEnabled      *bool `json:"two_factor_enabled"`
	SessionTimeout        *int  `json:"session_timeout"`
	EmailNotifications    *bool `json:"email_notifications"`
	SmsNotifications      *bool `json:"sms_notifications"`
	WhatsappNotifications *bool `json:"whatsapp_notifications"`

	AutoBackup        *bool   `json:"auto_backup"`
	BackupFrequency   *string `json:"backup_frequency"`
	Integrations      *string `json:"integrations"`
	GdprCompliant     *bool   `json:"gdpr_compliant"`
	DataRetentionDays *int    `json:"data_retention_days"`
}

type UpdateClient struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`

	IsActive            *bool   `json:"is_active"`
	ServiceType         *string `json:"service_type"`
	WhatsappInstanceURL *string `json:"whatsapp_instance_url"`
	Settings            *string `json:"settings"`
	AssistantID         *string `json:"assistant_id"`
	PromptIA            *string `json:"prompt_ia"`
	AgentName           *string `json:"agent_name"`

	Plan            *string `json:"plan"`
	MaxUsers        *int    `json:"max_users"`
	MaxAppointments *int    `json:"max_appointments"`
	MaxStorage      *int    `json:"max_storage"`
	CustomDomain    *string `json:"custom_domain"`

	BrandingSettings *string `json:"branding_settings"`
	BusinessHours    *string `json:"business_hours"`
	Timezone         *string `json:"timezone"`
	Language         *string `json:"language"`
	Currency         *string `json:"currency"`

	TwoFactorEnabled      *bool `json:"two_factor_enabled"`
	SessionTimeout        *int  `json:"session_timeout"`
	EmailNotifications    *bool `json:"email_notifications"`
	SmsNotifications      *bool `json:"sms_notifications"`
	WhatsappNotifications *bool `json:"whatsapp_notifications"`

	AutoBackup        *bool   `json:"auto_backup"`
	BackupFrequency   *string `json:"backup_frequency"`
	Integrations      *string `json:"integrations"`
	GdprCompliant     *bool   `json:"gdpr_compliant"`
	DataRetentionDays *int    `json:"data_retention_days"`
}

type InsertProfessional struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       *string `json:"phone"`
	SpecialtyID *string `json:"specialty_id"`
	ClientID    string  `json:"client_id" binding:"required"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateProfessional struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	SpecialtyID *string `json:"specialty_id"`
	IsActive    *bool   `json:"is_active"`
}

type InsertSpecialty struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	ServiceID   *string `json:"service_id"`
	ClientID    string  `json:"client_id" binding:"required"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateSpecialty struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Color       *string `json:"color"`
	ServiceID   *string `json:"service_id"`
	IsActive    *bool   `json:"is_active"`
}

type InsertService struct {
	Name        string  `json:"name" binding:"required"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Duration    int     `json:"duration" binding:"required,gt=0"`
	Price       *int    `json:"price"`
	SpecialtyID *string `json:"specialty_id"`
	ClientID    string  `json:"client_id" binding:"required"`
	IsActive    *bool   `json:"is_active"`
}

type UpdateService struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Duration    *int    `json:"duration"`
	Price       *int    `json:"price"`
	SpecialtyID *string `json:"specialty_id"`
	IsActive    *bool   `json:"is_active"`
}

type InsertAppointment struct {
	ClientID       string     `json:"client_id" binding:"required"`
	ProfessionalID *string    `json:"professional_id"`
	ServiceID      *string    `json:"service_id"`
	CustomerID     *string    `json:"customer_id"`
	ScheduledAt    time.Time  `json:"scheduled_at" binding:"required"`
	StartTime      *time.Time `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	Duration       int        `json:"duration" binding:"required,gt=0"`
	Status         *string    `json:"status"`
	Notes          *string    `json:"notes"`
}

type UpdateAppointment struct {
	ProfessionalID *string    `json:"professional_id"`
	ServiceID      *string    `json:"service_id"`
	CustomerID     *string    `json:"customer_id"`
	ScheduledAt    *time.Time `json:"scheduled_at"`
	StartTime      *time.Time `json:"start_time"`
	EndTime        *time.Time `json:"end_time"`
	Duration       *int       `json:"duration"`
	Status         *string    `json:"status"`
	Notes          *string    `json:"notes"`
}

type InsertCustomer struct {
	Name     string  `json:"name" binding:"required"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	CpfCnpj  *string `json:"cpf_cnpj"`
	Notes    *string `json:"notes"`
	ClientID string  `json:"client_id" binding:"required"`
}

type UpdateCustomer struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	CpfCnpj *string `json:"cpf_cnpj"`
	Notes   *string `json:"notes"`
}

type InsertConnection struct {
	Instance string `json:"instance" binding:"required"`
	Token    string `json:"token"`
	Host     string `json:"host" binding:"required"`
	ClientID string `json:"client_id" binding:"required"`
	IsActive *bool  `json:"is_active"`
}

type UpdateConnection struct {
	Instance *string    `json:"instance"`
	Token    *string    `json:"token"`
	Host     *string    `json:"host"`
	IsActive *bool      `json:"is_active"`
	LastSync *time.Time `json:"last_sync"`
}

type InsertAvailability struct {
	ProfessionalID string `json:"professional_id" binding:"required"`
	ClientID       string `json:"client_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Weekday        int    `json:"weekday"`
	StartTime      string `json:"start_time" binding:"required"`
	EndTime        string `json:"end_time" binding:"required"`
	IsActive       *bool  `json:"is_active"`
}

type UpdateAvailability struct {
	Date      *string `json:"date"`
	Weekday   *int    `json:"weekday"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	IsActive  *bool   `json:"is_active"`
}

// MonthlyAvailability replaces all slots of one professional for one month.
type MonthlyAvailability struct {
	ClientID       string            `json:"client_id" binding:"required"`
	ProfessionalID string            `json:"professional_id" binding:"required"`
	Month          string            `json:"month" binding:"required"` // YYYY-MM
	Slots          []MonthlySlotItem `json:"slots"`
}

type MonthlySlotItem struct {
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	IsActive  *bool  `json:"is_active"`
}

type InsertSubscriptionPlan struct {
	Name  string `json:"name" binding:"required"`
	Price int    `json:"price" binding:"required,gt=0"`
}

type InsertSubscription struct {
	ClientID string  `json:"client_id" binding:"required"`
	PlanID   string  `json:"plan_id" binding:"required"`
	Status   *string `json:"status"`
}

// ---------- default materialization ----------

func strOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

func boolOr(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}

func NewID() string {
	return uuid.NewString()
}

func BuildUser(in InsertUser, id uint, passwordHash string, now time.Time) models.User {
	return models.User{
		ID:           id,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: passwordHash,
		Role:         strOr(in.Role, "user"),
		CreatedAt:    now,
	}
}

func BuildClient(in InsertClient, id string, passwordHash *string, now time.Time) models.Client {
	return models.Client{
		ID:                    id,
		Name:                  in.Name,
		Email:                 in.Email,
		Phone:                 in.Phone,
		IsActive:              boolOr(in.IsActive, true),
		ServiceType:           in.ServiceType,
		WhatsappInstanceURL:   in.WhatsappInstanceURL,
		Settings:              in.Settings,
		AssistantID:           in.AssistantID,
		PasswordHash:          passwordHash,
		PromptIA:              in.PromptIA,
		AgentName:             in.AgentName,
		Plan:                  strOr(in.Plan, "basic"),
		MaxUsers:              intOr(in.MaxUsers, 5),
		MaxAppointments:       intOr(in.MaxAppointments, 100),
		MaxStorage:            intOr(in.MaxStorage, 1),
		CustomDomain:          in.CustomDomain,
		BrandingSettings:      in.BrandingSettings,
		BusinessHours:         in.BusinessHours,
		Timezone:              strOr(in.Timezone, "America/Sao_Paulo"),
		Language:              strOr(in.Language, "pt-BR"),
		Currency:              strOr(in.Currency, "BRL"),
		TwoFactorEnabled:      boolOr(in.TwoFactorEnabled, false),
		SessionTimeout:        intOr(in.SessionTimeout, 24),
		EmailNotifications:    boolOr(in.EmailNotifications, true),
		SmsNotifications:      boolOr(in.SmsNotifications, false),
		WhatsappNotifications: boolOr(in.WhatsappNotifications, true),
		AutoBackup:            boolOr(in.AutoBackup, true),
		BackupFrequency:       strOr(in.BackupFrequency, "daily"),
		Integrations:          in.Integrations,
		GdprCompliant:         boolOr(in.GdprCompliant, true),
		DataRetentionDays:     intOr(in.DataRetentionDays, 365),
		CreatedAt:             now,
	}
}

// ApplyTo merges the patch onto the stored record. Identity fields (id,
// created_at, password hash) are never touched.
func (up UpdateClient) ApplyTo(c *models.Client) {
	if up.Name != nil {
		c.Name = *up.Name
	}
	if up.Email != nil {
		c.Email = *up.Email
	}
	if up.Phone != nil {
		c.Phone = up.Phone
	}
	if up.IsActive != nil {
		c.IsActive = *up.IsActive
	}
	if up.ServiceType != nil {
		c.ServiceType = up.ServiceType
	}
	if up.WhatsappInstanceURL != nil {
		c.WhatsappInstanceURL = up.WhatsappInstanceURL
	}
	if up.Settings != nil {
		c.Settings = up.Settings
	}
	if up.AssistantID != nil {
		c.AssistantID = up.AssistantID
	}
	if up.PromptIA != nil {
		c.PromptIA = up.PromptIA
	}
	if up.AgentName != nil {
		c.AgentName = up.AgentName
	}
	if up.Plan != nil {
		c.Plan = *up.Plan
	}
	if up.MaxUsers != nil {
		c.MaxUsers = *up.MaxUsers
	}
	if up.MaxAppointments != nil {
		c.MaxAppointments = *up.MaxAppointments
	}
	if up.MaxStorage != nil {
		c.MaxStorage = *up.MaxStorage
	}
	if up.CustomDomain != nil {
		c.CustomDomain = up.CustomDomain
	}
	if up.BrandingSettings != nil {
		c.BrandingSettings = up.BrandingSettings
	}
	if up.BusinessHours != nil {
		c.BusinessHours = up.BusinessHours
	}
	if up.Timezone != nil {
		c.Timezone = *up.Timezone
	}
	if up.Language != nil {
		c.Language = *up.Language
	}
	if up.Currency != nil {
		c.Currency = *up.Currency
	}
	if up.TwoFactorEnabled != nil {
		c.TwoFactorEnabled = *up.TwoFactorEnabled
	}
	if up.SessionTimeout != nil {
		c.SessionTimeout = *up.SessionTimeout
	}
	if up.EmailNotifications != nil {
		c.EmailNotifications = *up.EmailNotifications
	}
	if up.SmsNotifications != nil {
		c.SmsNotifications = *up.SmsNotifications
	}
	if up.WhatsappNotifications != nil {
		c.WhatsappNotifications = *up.WhatsappNotifications
	}
	if up.AutoBackup != nil {
		c.AutoBackup = *up.AutoBackup
	}
	if up.BackupFrequency != nil {
		c.BackupFrequency = *up.BackupFrequency
	}
	if up.Integrations != nil {
		c.Integrations = up.Integrations
	}
	if up.GdprCompliant != nil {
		c.GdprCompliant = *up.GdprCompliant
	}
	if up.DataRetentionDays != nil {
		c.DataRetentionDays = *up.DataRetentionDays
	}
}

func BuildProfessional(in InsertProfessional, id string, now time.Time) models.Professional {
	return models.Professional{
		ID:          id,
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		SpecialtyID: in.SpecialtyID,
		ClientID:    in.ClientID,
		IsActive:    boolOr(in.IsActive, true),
		CreatedAt:   now,
	}
}

func (up UpdateProfessional) ApplyTo(p *models.Professional) {
	if up.Name != nil {
		p.Name = *up.Name
	}
	if up.Email != nil {
		p.Email = *up.Email
	}
	if up.Phone != nil {
		p.Phone = up.Phone
	}
	if up.SpecialtyID != nil {
		p.SpecialtyID = up.SpecialtyID
	}
	if up.IsActive != nil {
		p.IsActive = *up.IsActive
	}
}

func BuildSpecialty(in InsertSpecialty, id string, now time.Time) models.Specialty {
	return models.Specialty{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Color:       strOr(in.Color, "#3B82F6"),
		ServiceID:   in.ServiceID,
		ClientID:    in.ClientID,
		IsActive:    boolOr(in.IsActive, true),
		CreatedAt:   now,
	}
}

func (up UpdateSpecialty) ApplyTo(s *models.Specialty) {
	if up.Name != nil {
		s.Name = *up.Name
	}
	if up.Description != nil {
		s.Description = up.Description
	}
	if up.Color != nil {
		s.Color = *up.Color
	}
	if up.ServiceID != nil {
		s.ServiceID = up.ServiceID
	}
	if up.IsActive != nil {
		s.IsActive = *up.IsActive
	}
}

func BuildService(in InsertService, id string, now time.Time) models.Service {
	return models.Service{
		ID:          id,
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Duration:    in.Duration,
		Price:       in.Price,
		SpecialtyID: in.SpecialtyID,
		ClientID:    in.ClientID,
		IsActive:    boolOr(in.IsActive, true),
		CreatedAt:   now,
	}
}

func (up UpdateService) ApplyTo(s *models.Service) {
	if up.Name != nil {
		s.Name = *up.Name
	}
	if up.Category != nil {
		s.Category = up.Category
	}
	if up.Description != nil {
		s.Description = up.Description
	}
	if up.Duration != nil {
		s.Duration = *up.Duration
	}
	if up.Price != nil {
		s.Price = up.Price
	}
	if up.SpecialtyID != nil {
		s.SpecialtyID = up.SpecialtyID
	}
	if up.IsActive != nil {
		s.IsActive = *up.IsActive
	}
}

func BuildAppointment(in InsertAppointment, id string, now time.Time) models.Appointment {
	return models.Appointment{
		ID:             id,
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		ServiceID:      in.ServiceID,
		CustomerID:     in.CustomerID,
		ScheduledAt:    in.ScheduledAt,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		Duration:       in.Duration,
		Status:         strOr(in.Status, models.AppointmentScheduled),
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (up UpdateAppointment) ApplyTo(a *models.Appointment, now time.Time) {
	if up.ProfessionalID != nil {
		a.ProfessionalID = up.ProfessionalID
	}
	if up.ServiceID != nil {
		a.ServiceID = up.ServiceID
	}
	if up.CustomerID != nil {
		a.CustomerID = up.CustomerID
	}
	if up.ScheduledAt != nil {
		a.ScheduledAt = *up.ScheduledAt
	}
	if up.StartTime != nil {
		a.StartTime = up.StartTime
	}
	if up.EndTime != nil {
		a.EndTime = up.EndTime
	}
	if up.Duration != nil {
		a.Duration = *up.Duration
	}
	if up.Status != nil {
		a.Status = *up.Status
	}
	if up.Notes != nil {
		a.Notes = up.Notes
	}
	a.UpdatedAt = now
}

func BuildCustomer(in InsertCustomer, id string, now time.Time) models.Customer {
	return models.Customer{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		CpfCnpj:   in.CpfCnpj,
		Notes:     in.Notes,
		ClientID:  in.ClientID,
		CreatedAt: now,
	}
}

func (up UpdateCustomer) ApplyTo(c *models.Customer) {
	if up.Name != nil {
		c.Name = *up.Name
	}
	if up.Email != nil {
		c.Email = up.Email
	}
	if up.Phone != nil {
		c.Phone = up.Phone
	}
	if up.CpfCnpj != nil {
		c.CpfCnpj = up.CpfCnpj
	}
	if up.Notes != nil {
		c.Notes = up.Notes
	}
}

func BuildConnection(in InsertConnection, id uint, now time.Time) models.Connection {
	return models.Connection{
		ID:        id,
		Instance:  in.Instance,
		Token:     in.Token,
		Host:      in.Host,
		ClientID:  in.ClientID,
		IsActive:  boolOr(in.IsActive, true),
		LastSync:  nil,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (up UpdateConnection) ApplyTo(c *models.Connection, now time.Time) {
	if up.Instance != nil {
		c.Instance = *up.Instance
	}
	if up.Token != nil {
		c.Token = *up.Token
	}
	if up.Host != nil {
		c.Host = *up.Host
	}
	if up.IsActive != nil {
		c.IsActive = *up.IsActive
	}
	if up.LastSync != nil {
		c.LastSync = up.LastSync
	}
	c.UpdatedAt = now
}

func BuildAvailability(in InsertAvailability, id string, now time.Time) models.ProfessionalAvailability {
	return models.ProfessionalAvailability{
		ID:             id,
		ProfessionalID: in.ProfessionalID,
		ClientID:       in.ClientID,
		Date:           in.Date,
		Weekday:        in.Weekday,
		StartTime:      in.StartTime,
		EndTime:        in.EndTime,
		IsActive:       boolOr(in.IsActive, true),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (up UpdateAvailability) ApplyTo(a *models.ProfessionalAvailability, now time.Time) {
	if up.Date != nil {
		a.Date = *up.Date
	}
	if up.Weekday != nil {
		a.Weekday = *up.Weekday
	}
	if up.StartTime != nil {
		a.StartTime = *up.StartTime
	}
	if up.EndTime != nil {
		a.EndTime = *up.EndTime
	}
	if up.IsActive != nil {
		a.IsActive = *up.IsActive
	}
	a.UpdatedAt = now
}

func BuildSubscriptionPlan(in InsertSubscriptionPlan, id string, now time.Time) models.SubscriptionPlan {
	return models.SubscriptionPlan{
		ID:        id,
		Name:      in.Name,
		Price:     in.Price,
		CreatedAt: now,
	}
}

func BuildSubscription(in InsertSubscription, id string, now time.Time) models.Subscription {
	return models.Subscription{
		ID:        id,
		ClientID:  in.ClientID,
		PlanID:    in.PlanID,
		Status:    strOr(in.Status, "active"),
		CreatedAt: now,
	}
}
