package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/semprecheioapp/semprecheio-api/internal/models"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
	"github.com/semprecheioapp/semprecheio-api/internal/timezone"
)

// -------- Specialty --------

func (s *Store) GetSpecialty(ctx context.Context, id string) (*models.Specialty, error) {
	var sp models.Specialty
	if err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sp).Error; err != nil {
		return nil, wrap(err)
	}
	return &sp, nil
}

func (s *Store) CreateSpecialty(ctx context.Context, in storage.InsertSpecialty) (*models.Specialty, error) {
	sp := storage.BuildSpecialty(in, storage.NewID(), time.Now())
	if err := s.db.WithContext(ctx).Create(&sp).Error; err != nil {
		return nil, err
	}
	return &sp, nil
}

func (s *Store) UpdateSpecialty(ctx context.Context, id string, up storage.UpdateSpecialty) (*models.Specialty, error) {
	sp, err := s.GetSpecialty(ctx, id)
	if err != nil {
		return nil, err
	}
	up.ApplyTo(sp)
	if err := s.db.WithContext(ctx).Save(sp).Error; err != nil {
		return nil, err
	}
	return sp, nil
}

func (s *Store) DeleteSpecialty(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.Specialty{}, "id = ?", id).Error
}

func (s *Store) ListSpecialties(ctx context.Context, clientID string) ([]models.Specialty, error) {
	var out []models.Specialty
	if err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// -------- Service --------

func (s *Store) GetService(ctx context.Context, id string) (*models.Service, error) {
	var sv models.Service
	if err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sv).Error; err != nil {
		return nil, wrap(err)
	}
	return &sv, nil
}

func (s *Store) CreateService(ctx context.Context, in storage.InsertService) (*models.Service, error) {
	sv := storage.BuildService(in, storage.NewID(), time.Now())
	if err := s.db.WithContext(ctx).Create(&sv).Error; err != nil {
		return nil, err
	}
	return &sv, nil
}

func (s *Store) UpdateService(ctx context.Context, id string, up storage.UpdateService) (*models.Service, error) {
	sv, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	up.ApplyTo(sv)
	if err := s.db.WithContext(ctx).Save(sv).Error; err != nil {
		return nil, err
	}
	return sv, nil
}

func (s *Store) DeleteService(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id).Error
}

func (s *Store) ListServices(ctx context.Context, clientID string) ([]models.Service, error) {
	var out []models.Service
	if err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// -------- Appointment --------

func (s *Store) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	var a models.Appointment
	if err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&a).Error; err != nil {
		return nil, wrap(err)
	}
	return &a, nil
}

func (s *Store) CreateAppointment(ctx context.Context, in storage.InsertAppointment) (*models.Appointment, error) {
	a := storage.BuildAppointment(in, storage.NewID(), time.Now())
	if err := s.db.WithContext(ctx).Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) UpdateAppointment(ctx context.Context, id string, up storage.UpdateAppointment) (*models.Appointment, error) {
	a, err := s.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}
	up.ApplyTo(a, time.Now())
	if err := s.db.WithContext(ctx).Save(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id).Error
}

func (s *Store) CancelAppointment(ctx context.Context, id string) error {
	err := s.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":     models.AppointmentCancelled,
			"updated_at": time.Now(),
		}).Error
	return err
}

func (s *Store) ListAppointments(ctx context.Context, clientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	if err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("scheduled_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// -------- Customer --------

func (s *Store) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&c).Error; err != nil {
		return nil, wrap(err)
	}
	return &c, nil
}

func (s *Store) CreateCustomer(ctx context.Context, in storage.InsertCustomer) (*models.Customer, error) {
	c := storage.BuildCustomer(in, storage.NewID(), time.Now())
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) UpdateCustomer(ctx context.Context, id string, up storage.UpdateCustomer) (*models.Customer, error) {
	c, err := s.GetCustomer(ctx, id)
	if err != nil {
		return nil, err
	}
	up.ApplyTo(c)
	if err := s.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) DeleteCustomer(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.Customer{}, "id = ?", id).Error
}

func (s *Store) ListCustomers(ctx context.Context, clientID string) ([]models.Customer, error) {
	var out []models.Customer
	if err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// -------- Connection --------

func (s *Store) GetConnection(ctx context.Context, id uint) (*models.Connection, error) {
	var c models.Connection
	if err := s.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, wrap(err)
	}
	return &c, nil
}

func (s *Store) CreateConnection(ctx context.Context, in storage.InsertConnection) (*models.Connection, error) {
	c := storage.BuildConnection(in, 0, time.Now())
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) UpdateConnection(ctx context.Context, id uint, up storage.UpdateConnection) (*models.Connection, error) {
	c, err := s.GetConnection(ctx, id)
	if err != nil {
		return nil, err
	}
	up.ApplyTo(c, time.Now())
	if err := s.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) DeleteConnection(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&models.Connection{}, id).Error
}

func (s *Store) ListConnections(ctx context.Context, clientID string) ([]models.Connection, error) {
	var out []models.Connection
	if err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) ValidateConnection(ctx context.Context, id uint) (bool, error) {
	c, err := s.GetConnection(ctx, id)
	if err == storage.ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return c.IsActive, nil
}

func (s *Store) GetClientByWhatsappInstance(ctx context.Context, instanceURL string) (*models.Client, error) {
	var c models.Client
	err := s.db.WithContext(ctx).
		Where("whatsapp_instance_url = ?", instanceURL).
		First(&c).Error
	if err == nil {
		return &c, nil
	}

	var conn models.Connection
	if err := s.db.WithContext(ctx).
		Where("instance = ?", instanceURL).
		First(&conn).Error; err != nil {
		return nil, wrap(err)
	}
	return s.GetClient(ctx, conn.ClientID)
}

// -------- Professional availability --------

func (s *Store) GetProfessionalAvailability(ctx context.Context, id string) (*models.ProfessionalAvailability, error) {
	var a models.ProfessionalAvailability
	if err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&a).Error; err != nil {
		return nil, wrap(err)
	}
	return &a, nil
}

func (s *Store) CreateProfessionalAvailability(ctx context.Context, in storage.InsertAvailability) (*models.ProfessionalAvailability, error) {
	a := storage.BuildAvailability(in, storage.NewID(), time.Now())
	if err := s.db.WithContext(ctx).Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Store) UpdateProfessionalAvailability(ctx context.Context, id string, up storage.UpdateAvailability) (*models.ProfessionalAvailability, error) {
	a, err := s.GetProfessionalAvailability(ctx, id)
	if err != nil {
		return nil, err
	}
	up.ApplyTo(a, time.Now())
	if err := s.db.WithContext(ctx).Save(a).Error; err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Store) DeleteProfessionalAvailability(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.ProfessionalAvailability{}, "id = ?", id).Error
}

func (s *Store) ListProfessionalAvailability(ctx context.Context, professionalID string) ([]models.ProfessionalAvailability, error) {
	var out []models.ProfessionalAvailability
	if err := s.db.WithContext(ctx).
		Where("professional_id = ?", professionalID).
		Order("date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) ListProfessionalAvailabilityByClient(ctx context.Context, clientID string) ([]models.ProfessionalAvailability, error) {
	var out []models.ProfessionalAvailability
	if err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) UpdateMonthlyAvailability(ctx context.Context, in storage.MonthlyAvailability) error {
	now := time.Now()

	rows := make([]models.ProfessionalAvailability, 0, len(in.Slots))
	for _, slot := range in.Slots {
		d, err := time.Parse("2006-01-02", slot.Date)
		if err != nil {
			return err
		}
		active := true
		if slot.IsActive != nil {
			active = *slot.IsActive
		}
		rows = append(rows, models.ProfessionalAvailability{
			ID:             storage.NewID(),
			ProfessionalID: in.ProfessionalID,
			ClientID:       in.ClientID,
			Date:           slot.Date,
			Weekday:        int(d.Weekday()),
			StartTime:      slot.StartTime,
			EndTime:        slot.EndTime,
			IsActive:       active,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("professional_id = ? AND date LIKE ?", in.ProfessionalID, in.Month+"%").
			Delete(&models.ProfessionalAvailability{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}

func (s *Store) GenerateNextMonthAvailability(ctx context.Context, clientID string, tz string) error {
	existing, err := s.ListProfessionalAvailabilityByClient(ctx, clientID)
	if err != nil {
		return err
	}

	now := time.Now()
	rows := storage.ProjectNextMonth(existing, now, timezone.Location(tz))
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		rows[i].ID = storage.NewID()
		rows[i].CreatedAt = now
		rows[i].UpdatedAt = now
	}
	return s.db.WithContext(ctx).Create(&rows).Error
}

// -------- Subscription / billing --------

func (s *Store) ListSubscriptionPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	var out []models.SubscriptionPlan
	if err := s.db.WithContext(ctx).
		Order("price ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) GetSubscriptionPlan(ctx context.Context, id string) (*models.SubscriptionPlan, error) {
	var p models.SubscriptionPlan
	if err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error; err != nil {
		return nil, wrap(err)
	}
	return &p, nil
}

func (s *Store) CreateSubscriptionPlan(ctx context.Context, in storage.InsertSubscriptionPlan) (*models.SubscriptionPlan, error) {
	p := storage.BuildSubscriptionPlan(in, storage.NewID(), time.Now())
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) ListSubscriptions(ctx context.Context, clientID string) ([]models.Subscription, error) {
	var out []models.Subscription
	if err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) GetSubscription(ctx context.Context, id string) (*models.Subscription, error) {
	var sub models.Subscription
	if err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sub).Error; err != nil {
		return nil, wrap(err)
	}
	return &sub, nil
}

func (s *Store) CreateSubscription(ctx context.Context, in storage.InsertSubscription) (*models.Subscription, error) {
	sub := storage.BuildSubscription(in, storage.NewID(), time.Now())
	if err := s.db.WithContext(ctx).Create(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *Store) ListInvoices(ctx context.Context, clientID string) ([]models.Invoice, error) {
	var out []models.Invoice
	if err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) ListPayments(ctx context.Context, clientID string) ([]models.Payment, error) {
	var out []models.Payment
	if err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// -------- Backup --------

func (s *Store) CreateBackup(ctx context.Context, b *models.Backup) error {
	if b.ID == "" {
		b.ID = storage.NewID()
	}
	return s.db.WithContext(ctx).Create(b).Error
}

func (s *Store) ListBackups(ctx context.Context, clientID string) ([]models.Backup, error) {
	var out []models.Backup
	if err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// -------- Audit --------

func (s *Store) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	return s.db.WithContext(ctx).Create(log).Error
}

func (s *Store) ListAuditLogs(ctx context.Context, clientID string, limit int) ([]models.AuditLog, error) {
	q := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var out []models.AuditLog
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
