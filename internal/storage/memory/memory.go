// Package memory is the canonical in-process storage backend. Each entity
// family is owned by one operation module; the Store facade only routes.
package memory

import (
	"context"
	"time"

	"github.com/semprecheioapp/semprecheio-api/internal/models"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
	"github.com/semprecheioapp/semprecheio-api/internal/timezone"
)

type Store struct {
	userOps         *userOps
	clientOps       *clientOps
	professionalOps *professionalOps
	extendedOps     *extendedOps
}

func New() *Store {
	return &Store{
		userOps:         newUserOps(),
		clientOps:       newClientOps(),
		professionalOps: newProfessionalOps(),
		extendedOps:     newExtendedOps(),
	}
}

// -------- User / session --------

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.userOps.GetUser(ctx, id)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.userOps.GetUserByEmail(ctx, email)
}

func (s *Store) CreateUser(ctx context.Context, in storage.InsertUser) (*models.User, error) {
	return s.userOps.CreateUser(ctx, in)
}

func (s *Store) ValidateUser(ctx context.Context, email, password string) (*models.User, error) {
	return s.userOps.ValidateUser(ctx, email, password)
}

func (s *Store) CreateSession(ctx context.Context, userID uint, expiresAt time.Time) (*models.Session, error) {
	return s.userOps.CreateSession(ctx, userID, expiresAt)
}

func (s *Store) GetSession(ctx context.Context, token string) (*models.Session, error) {
	return s.userOps.GetSession(ctx, token)
}

func (s *Store) DeleteSession(ctx context.Context, token string) error {
	return s.userOps.DeleteSession(ctx, token)
}

func (s *Store) GetUserBySession(ctx context.Context, token string) (*models.User, error) {
	return s.userOps.GetUserBySession(ctx, token)
}

// -------- Client --------

func (s *Store) GetClient(ctx context.Context, id string) (*models.Client, error) {
	return s.clientOps.GetClient(ctx, id)
}

func (s *Store) GetClientByEmail(ctx context.Context, email string) (*models.Client, error) {
	return s.clientOps.GetClientByEmail(ctx, email)
}

func (s *Store) CreateClient(ctx context.Context, in storage.InsertClient) (*models.Client, error) {
	return s.clientOps.CreateClient(ctx, in)
}

func (s *Store) ValidateClient(ctx context.Context, email, password string) (*models.Client, error) {
	return s.clientOps.ValidateClient(ctx, email, password)
}

func (s *Store) UpdateClient(ctx context.Context, id string, up storage.UpdateClient) (*models.Client, error) {
	return s.clientOps.UpdateClient(ctx, id, up)
}

func (s *Store) DeleteClient(ctx context.Context, id string) error {
	return s.clientOps.DeleteClient(ctx, id)
}

func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	return s.clientOps.ListClients(ctx)
}

// -------- Professional --------

func (s *Store) GetProfessional(ctx context.Context, id string) (*models.Professional, error) {
	return s.professionalOps.GetProfessional(ctx, id)
}

func (s *Store) GetProfessionalByEmail(ctx context.Context, email string) (*models.Professional, error) {
	return s.professionalOps.GetProfessionalByEmail(ctx, email)
}

func (s *Store) CreateProfessional(ctx context.Context, in storage.InsertProfessional) (*models.Professional, error) {
	return s.professionalOps.CreateProfessional(ctx, in)
}

func (s *Store) UpdateProfessional(ctx context.Context, id string, up storage.UpdateProfessional) (*models.Professional, error) {
	return s.professionalOps.UpdateProfessional(ctx, id, up)
}

func (s *Store) DeleteProfessional(ctx context.Context, id string) error {
	return s.professionalOps.DeleteProfessional(ctx, id)
}

func (s *Store) ListProfessionals(ctx context.Context, clientID string) ([]models.Professional, error) {
	return s.professionalOps.ListProfessionals(ctx, clientID)
}

// -------- Specialty --------

func (s *Store) GetSpecialty(ctx context.Context, id string) (*models.Specialty, error) {
	return s.extendedOps.GetSpecialty(ctx, id)
}

func (s *Store) CreateSpecialty(ctx context.Context, in storage.InsertSpecialty) (*models.Specialty, error) {
	return s.extendedOps.CreateSpecialty(ctx, in)
}

func (s *Store) UpdateSpecialty(ctx context.Context, id string, up storage.UpdateSpecialty) (*models.Specialty, error) {
	return s.extendedOps.UpdateSpecialty(ctx, id, up)
}

func (s *Store) DeleteSpecialty(ctx context.Context, id string) error {
	return s.extendedOps.DeleteSpecialty(ctx, id)
}

func (s *Store) ListSpecialties(ctx context.Context, clientID string) ([]models.Specialty, error) {
	return s.extendedOps.ListSpecialties(ctx, clientID)
}

// -------- Service --------

func (s *Store) GetService(ctx context.Context, id string) (*models.Service, error) {
	return s.extendedOps.GetService(ctx, id)
}

func (s *Store) CreateService(ctx context.Context, in storage.InsertService) (*models.Service, error) {
	return s.extendedOps.CreateService(ctx, in)
}

func (s *Store) UpdateService(ctx context.Context, id string, up storage.UpdateService) (*models.Service, error) {
	return s.extendedOps.UpdateService(ctx, id, up)
}

func (s *Store) DeleteService(ctx context.Context, id string) error {
	return s.extendedOps.DeleteService(ctx, id)
}

func (s *Store) ListServices(ctx context.Context, clientID string) ([]models.Service, error) {
	return s.extendedOps.ListServices(ctx, clientID)
}

// -------- Appointment --------

func (s *Store) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.extendedOps.GetAppointment(ctx, id)
}

func (s *Store) CreateAppointment(ctx context.Context, in storage.InsertAppointment) (*models.Appointment, error) {
	return s.extendedOps.CreateAppointment(ctx, in)
}

func (s *Store) UpdateAppointment(ctx context.Context, id string, up storage.UpdateAppointment) (*models.Appointment, error) {
	return s.extendedOps.UpdateAppointment(ctx, id, up)
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	return s.extendedOps.DeleteAppointment(ctx, id)
}

func (s *Store) CancelAppointment(ctx context.Context, id string) error {
	return s.extendedOps.CancelAppointment(ctx, id)
}

func (s *Store) ListAppointments(ctx context.Context, clientID string) ([]models.Appointment, error) {
	return s.extendedOps.ListAppointments(ctx, clientID)
}

// -------- Customer --------

func (s *Store) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	return s.extendedOps.GetCustomer(ctx, id)
}

func (s *Store) CreateCustomer(ctx context.Context, in storage.InsertCustomer) (*models.Customer, error) {
	return s.extendedOps.CreateCustomer(ctx, in)
}

func (s *Store) UpdateCustomer(ctx context.Context, id string, up storage.UpdateCustomer) (*models.Customer, error) {
	return s.extendedOps.UpdateCustomer(ctx, id, up)
}

func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	return s.extendedOps.DeleteCustomer(ctx, id)
}

func (s *Store) ListCustomers(ctx context.Context, clientID string) ([]models.Customer, error) {
	return s.extendedOps.ListCustomers(ctx, clientID)
}

// -------- Connection --------

func (s *Store) GetConnection(ctx context.Context, id uint) (*models.Connection, error) {
	return s.extendedOps.GetConnection(ctx, id)
}

func (s *Store) CreateConnection(ctx context.Context, in storage.InsertConnection) (*models.Connection, error) {
	return s.extendedOps.CreateConnection(ctx, in)
}

func (s *Store) UpdateConnection(ctx context.Context, id uint, up storage.UpdateConnection) (*models.Connection, error) {
	return s.extendedOps.UpdateConnection(ctx, id, up)
}

func (s *Store) DeleteConnection(ctx context.Context, id uint) error {
	return s.extendedOps.DeleteConnection(ctx, id)
}

func (s *Store) ListConnections(ctx context.Context, clientID string) ([]models.Connection, error) {
	return s.extendedOps.ListConnections(ctx, clientID)
}

func (s *Store) ValidateConnection(ctx context.Context, id uint) (bool, error) {
	return s.extendedOps.ValidateConnection(ctx, id)
}

// GetClientByWhatsappInstance checks the tenant record first, then falls
// back to the connection bindings.
func (s *Store) GetClientByWhatsappInstance(ctx context.Context, instanceURL string) (*models.Client, error) {
	if c, ok := s.clientOps.findByInstance(instanceURL); ok {
		return c, nil
	}
	if clientID, ok := s.extendedOps.findClientIDByInstance(instanceURL); ok {
		return s.clientOps.GetClient(ctx, clientID)
	}
	return nil, storage.ErrNotFound
}

// -------- Professional availability --------

func (s *Store) GetProfessionalAvailability(ctx context.Context, id string) (*models.ProfessionalAvailability, error) {
	return s.extendedOps.GetProfessionalAvailability(ctx, id)
}

func (s *Store) CreateProfessionalAvailability(ctx context.Context, in storage.InsertAvailability) (*models.ProfessionalAvailability, error) {
	return s.extendedOps.CreateProfessionalAvailability(ctx, in)
}

func (s *Store) UpdateProfessionalAvailability(ctx context.Context, id string, up storage.UpdateAvailability) (*models.ProfessionalAvailability, error) {
	return s.extendedOps.UpdateProfessionalAvailability(ctx, id, up)
}

func (s *Store) DeleteProfessionalAvailability(ctx context.Context, id string) error {
	return s.extendedOps.DeleteProfessionalAvailability(ctx, id)
}

func (s *Store) ListProfessionalAvailability(ctx context.Context, professionalID string) ([]models.ProfessionalAvailability, error) {
	return s.extendedOps.ListProfessionalAvailability(ctx, professionalID)
}

func (s *Store) ListProfessionalAvailabilityByClient(ctx context.Context, clientID string) ([]models.ProfessionalAvailability, error) {
	return s.extendedOps.ListProfessionalAvailabilityByClient(ctx, clientID)
}

func (s *Store) UpdateMonthlyAvailability(ctx context.Context, in storage.MonthlyAvailability) error {
	return s.extendedOps.UpdateMonthlyAvailability(ctx, in)
}

func (s *Store) GenerateNextMonthAvailability(ctx context.Context, clientID string, tz string) error {
	s.extendedOps.generateNextMonth(clientID, timezone.Location(tz))
	return nil
}

// -------- Subscription / billing --------

func (s *Store) ListSubscriptionPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	return s.extendedOps.ListSubscriptionPlans(ctx)
}

func (s *Store) GetSubscriptionPlan(ctx context.Context, id string) (*models.SubscriptionPlan, error) {
	return s.extendedOps.GetSubscriptionPlan(ctx, id)
}

func (s *Store) CreateSubscriptionPlan(ctx context.Context, in storage.InsertSubscriptionPlan) (*models.SubscriptionPlan, error) {
	return s.extendedOps.CreateSubscriptionPlan(ctx, in)
}

func (s *Store) ListSubscriptions(ctx context.Context, clientID string) ([]models.Subscription, error) {
	return s.extendedOps.ListSubscriptions(ctx, clientID)
}

func (s *Store) GetSubscription(ctx context.Context, id string) (*models.Subscription, error) {
	return s.extendedOps.GetSubscription(ctx, id)
}

func (s *Store) CreateSubscription(ctx context.Context, in storage.InsertSubscription) (*models.Subscription, error) {
	return s.extendedOps.CreateSubscription(ctx, in)
}

func (s *Store) ListInvoices(ctx context.Context, clientID string) ([]models.Invoice, error) {
	return s.extendedOps.ListInvoices(ctx, clientID)
}

func (s *Store) ListPayments(ctx context.Context, clientID string) ([]models.Payment, error) {
	return s.extendedOps.ListPayments(ctx, clientID)
}

// -------- Backup --------

func (s *Store) CreateBackup(ctx context.Context, b *models.Backup) error {
	return s.extendedOps.CreateBackup(ctx, b)
}

func (s *Store) ListBackups(ctx context.Context, clientID string) ([]models.Backup, error) {
	return s.extendedOps.ListBackups(ctx, clientID)
}

// -------- Audit --------

func (s *Store) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	return s.extendedOps.CreateAuditLog(ctx, log)
}

func (s *Store) ListAuditLogs(ctx context.Context, clientID string, limit int) ([]models.AuditLog, error) {
	return s.extendedOps.ListAuditLogs(ctx, clientID, limit)
}

// Compile-time check
var _ storage.Storage = (*Store)(nil)
