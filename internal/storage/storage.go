package storage

import (
	"context"
	"errors"
	"time"

	"github.com/semprecheioapp/semprecheio-api/internal/models"
)

// ErrNotFound is returned whenever a requested key is absent. Missing
// records are never surfaced any other way.
var ErrNotFound = errors.New("record not found")

// ErrInvalidCredentials covers both unknown email and wrong password,
// indistinguishably.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Storage is the single contract the route layer depends on. It is
// implemented by the in-memory backend (storage/memory) and the postgres
// backend (storage/postgres); the backend is picked once at startup.
//
// List operations filter by the owning client id inside the storage layer.
// Get/Update/Delete are id-keyed; ownership checks belong to the caller.
type Storage interface {
	// User / session
	GetUser(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, in InsertUser) (*models.User, error)
	ValidateUser(ctx context.Context, email, password string) (*models.User, error)
	CreateSession(ctx context.Context, userID uint, expiresAt time.Time) (*models.Session, error)
	GetSession(ctx context.Context, token string) (*models.Session, error)
	DeleteSession(ctx context.Context, token string) error
	GetUserBySession(ctx context.Context, token string) (*models.User, error)

	// Client (tenant)
	GetClient(ctx context.Context, id string) (*models.Client, error)
	GetClientByEmail(ctx context.Context, email string) (*models.Client, error)
	CreateClient(ctx context.Context, in InsertClient) (*models.Client, error)
	ValidateClient(ctx context.Context, email, password string) (*models.Client, error)
	UpdateClient(ctx context.Context, id string, up UpdateClient) (*models.Client, error)
	DeleteClient(ctx context.Context, id string) error
	ListClients(ctx context.Context) ([]models.Client, error)

	// Professional
	GetProfessional(ctx context.Context, id string) (*models.Professional, error)
	GetProfessionalByEmail(ctx context.Context, email string) (*models.Professional, error)
	CreateProfessional(ctx context.Context, in InsertProfessional) (*models.Professional, error)
	UpdateProfessional(ctx context.Context, id string, up UpdateProfessional) (*models.Professional, error)
	DeleteProfessional(ctx context.Context, id string) error
	ListProfessionals(ctx context.Context, clientID string) ([]models.Professional, error)

	// Specialty
	GetSpecialty(ctx context.Context, id string) (*models.Specialty, error)
	CreateSpecialty(ctx context.Context, in InsertSpecialty) (*models.Specialty, error)
	UpdateSpecialty(ctx context.Context, id string, up UpdateSpecialty) (*models.Specialty, error)
	DeleteSpecialty(ctx context.Context, id string) error
	ListSpecialties(ctx context.Context, clientID string) ([]models.Specialty, error)

	// Service
	GetService(ctx context.Context, id string) (*models.Service, error)
	CreateService(ctx context.Context, in InsertService) (*models.Service, error)
	UpdateService(ctx context.Context, id string, up UpdateService) (*models.Service, error)
	DeleteService(ctx context.Context, id string) error
	ListServices(ctx context.Context, clientID string) ([]models.Service, error)

	// Appointment
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	CreateAppointment(ctx context.Context, in InsertAppointment) (*models.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, up UpdateAppointment) (*models.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	CancelAppointment(ctx context.Context, id string) error
	ListAppointments(ctx context.Context, clientID string) ([]models.Appointment, error)

	// Customer
	GetCustomer(ctx context.Context, id string) (*models.Customer, error)
	CreateCustomer(ctx context.Context, in InsertCustomer) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id string, up UpdateCustomer) (*models.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
	ListCustomers(ctx context.Context, clientID string) ([]models.Customer, error)

	// Connection
	GetConnection(ctx context.Context, id uint) (*models.Connection, error)
	CreateConnection(ctx context.Context, in InsertConnection) (*models.Connection, error)
	UpdateConnection(ctx context.Context, id uint, up UpdateConnection) (*models.Connection, error)
	DeleteConnection(ctx context.Context, id uint) error
	ListConnections(ctx context.Context, clientID string) ([]models.Connection, error)
	ValidateConnection(ctx context.Context, id uint) (bool, error)
	GetClientByWhatsappInstance(ctx context.Context, instanceURL string) (*models.Client, error)

	// Professional availability
	GetProfessionalAvailability(ctx context.Context, id string) (*models.ProfessionalAvailability, error)
	CreateProfessionalAvailability(ctx context.Context, in InsertAvailability) (*models.ProfessionalAvailability, error)
	UpdateProfessionalAvailability(ctx context.Context, id string, up UpdateAvailability) (*models.ProfessionalAvailability, error)
	DeleteProfessionalAvailability(ctx context.Context, id string) error
	ListProfessionalAvailability(ctx context.Context, professionalID string) ([]models.ProfessionalAvailability, error)
	ListProfessionalAvailabilityByClient(ctx context.Context, clientID string) ([]models.ProfessionalAvailability, error)
	UpdateMonthlyAvailability(ctx context.Context, in MonthlyAvailability) error
	GenerateNextMonthAvailability(ctx context.Context, clientID string, timezone string) error

	// Subscription / billing
	ListSubscriptionPlans(ctx context.Context) ([]models.SubscriptionPlan, error)
	GetSubscriptionPlan(ctx context.Context, id string) (*models.SubscriptionPlan, error)
	CreateSubscriptionPlan(ctx context.Context, in InsertSubscriptionPlan) (*models.SubscriptionPlan, error)
	ListSubscriptions(ctx context.Context, clientID string) ([]models.Subscription, error)
	GetSubscription(ctx context.Context, id string) (*models.Subscription, error)
	CreateSubscription(ctx context.Context, in InsertSubscription) (*models.Subscription, error)
	ListInvoices(ctx context.Context, clientID string) ([]models.Invoice, error)
	ListPayments(ctx context.Context, clientID string) ([]models.Payment, error)

	// Backup
	CreateBackup(ctx context.Context, b *models.Backup) error
	ListBackups(ctx context.Context, clientID string) ([]models.Backup, error)

	// Audit
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
	ListAuditLogs(ctx context.Context, clientID string, limit int) ([]models.AuditLog, error)
}
