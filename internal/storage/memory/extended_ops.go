package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/semprecheioapp/semprecheio-api/internal/models"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

// extendedOps owns every collection beyond users/clients/professionals:
// specialties, services, appointments, customers, connections,
// availability, billing records and audit logs.
type extendedOps struct {
	mu            sync.RWMutex
	specialties   map[string]models.Specialty
	services      map[string]models.Service
	appointments  map[string]models.Appointment
	customers     map[string]models.Customer
	connections   map[uint]models.Connection
	availability  map[string]models.ProfessionalAvailability
	plans         map[string]models.SubscriptionPlan
	subscriptions map[string]models.Subscription
	invoices      map[string]models.Invoice
	payments      map[string]models.Payment
	backups       map[string]models.Backup
	auditLogs     []models.AuditLog

	nextConnectionID uint
	nextAuditID      uint
}

func newExtendedOps() *extendedOps {
	return &extendedOps{
		specialties:      make(map[string]models.Specialty),
		services:         make(map[string]models.Service),
		appointments:     make(map[string]models.Appointment),
		customers:        make(map[string]models.Customer),
		connections:      make(map[uint]models.Connection),
		availability:     make(map[string]models.ProfessionalAvailability),
		plans:            make(map[string]models.SubscriptionPlan),
		subscriptions:    make(map[string]models.Subscription),
		invoices:         make(map[string]models.Invoice),
		payments:         make(map[string]models.Payment),
		backups:          make(map[string]models.Backup),
		nextConnectionID: 1,
		nextAuditID:      1,
	}
}

// -------- Specialty --------

func (o *extendedOps) GetSpecialty(ctx context.Context, id string) (*models.Specialty, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	s, ok := o.specialties[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &s, nil
}

func (o *extendedOps) CreateSpecialty(ctx context.Context, in storage.InsertSpecialty) (*models.Specialty, error) {
	s := storage.BuildSpecialty(in, storage.NewID(), time.Now())

	o.mu.Lock()
	o.specialties[s.ID] = s
	o.mu.Unlock()

	return &s, nil
}

func (o *extendedOps) UpdateSpecialty(ctx context.Context, id string, up storage.UpdateSpecialty) (*models.Specialty, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, ok := o.specialties[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	up.ApplyTo(&s)
	o.specialties[id] = s
	return &s, nil
}

func (o *extendedOps) DeleteSpecialty(ctx context.Context, id string) error {
	o.mu.Lock()
	delete(o.specialties, id)
	o.mu.Unlock()
	return nil
}

func (o *extendedOps) ListSpecialties(ctx context.Context, clientID string) ([]models.Specialty, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]models.Specialty, 0)
	for _, s := range o.specialties {
		if s.ClientID == clientID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// -------- Service --------

func (o *extendedOps) GetService(ctx context.Context, id string) (*models.Service, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	s, ok := o.services[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &s, nil
}

func (o *extendedOps) CreateService(ctx context.Context, in storage.InsertService) (*models.Service, error) {
	s := storage.BuildService(in, storage.NewID(), time.Now())

	o.mu.Lock()
	o.services[s.ID] = s
	o.mu.Unlock()

	return &s, nil
}

func (o *extendedOps) UpdateService(ctx context.Context, id string, up storage.UpdateService) (*models.Service, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, ok := o.services[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	up.ApplyTo(&s)
	o.services[id] = s
	return &s, nil
}

func (o *extendedOps) DeleteService(ctx context.Context, id string) error {
	o.mu.Lock()
	delete(o.services, id)
	o.mu.Unlock()
	return nil
}

func (o *extendedOps) ListServices(ctx context.Context, clientID string) ([]models.Service, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]models.Service, 0)
	for _, s := range o.services {
		if s.ClientID == clientID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// -------- Appointment --------

func (o *extendedOps) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	a, ok := o.appointments[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &a, nil
}

func (o *extendedOps) CreateAppointment(ctx context.Context, in storage.InsertAppointment) (*models.Appointment, error) {
	a := storage.BuildAppointment(in, storage.NewID(), time.Now())

	o.mu.Lock()
	o.appointments[a.ID] = a
	o.mu.Unlock()

	return &a, nil
}

func (o *extendedOps) UpdateAppointment(ctx context.Context, id string, up storage.UpdateAppointment) (*models.Appointment, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	a, ok := o.appointments[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	up.ApplyTo(&a, time.Now())
	o.appointments[id] = a
	return &a, nil
}

func (o *extendedOps) DeleteAppointment(ctx context.Context, id string) error {
	o.mu.Lock()
	delete(o.appointments, id)
	o.mu.Unlock()
	return nil
}

func (o *extendedOps) CancelAppointment(ctx context.Context, id string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	a, ok := o.appointments[id]
	if !ok {
		return nil
	}
	a.Status = models.AppointmentCancelled
	a.UpdatedAt = time.Now()
	o.appointments[id] = a
	return nil
}

func (o *extendedOps) ListAppointments(ctx context.Context, clientID string) ([]models.Appointment, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]models.Appointment, 0)
	for _, a := range o.appointments {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out, nil
}

// -------- Customer --------

func (o *extendedOps) GetCustomer(ctx context.Context, id string) (*models.Customer, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	c, ok := o.customers[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &c, nil
}

func (o *extendedOps) CreateCustomer(ctx context.Context, in storage.InsertCustomer) (*models.Customer, error) {
	c := storage.BuildCustomer(in, storage.NewID(), time.Now())

	o.mu.Lock()
	o.customers[c.ID] = c
	o.mu.Unlock()

	return &c, nil
}

func (o *extendedOps) UpdateCustomer(ctx context.Context, id string, up storage.UpdateCustomer) (*models.Customer, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	c, ok := o.customers[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	up.ApplyTo(&c)
	o.customers[id] = c
	return &c, nil
}

func (o *extendedOps) DeleteCustomer(ctx context.Context, id string) error {
	o.mu.Lock()
	delete(o.customers, id)
	o.mu.Unlock()
	return nil
}

func (o *extendedOps) ListCustomers(ctx context.Context, clientID string) ([]models.Customer, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]models.Customer, 0)
	for _, c := range o.customers {
		if c.ClientID == clientID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// -------- Connection --------

func (o *extendedOps) GetConnection(ctx context.Context, id uint) (*models.Connection, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	c, ok := o.connections[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &c, nil
}

func (o *extendedOps) CreateConnection(ctx context.Context, in storage.InsertConnection) (*models.Connection, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.nextConnectionID
	o.nextConnectionID++

	c := storage.BuildConnection(in, id, time.Now())
	o.connections[id] = c
	return &c, nil
}

func (o *extendedOps) UpdateConnection(ctx context.Context, id uint, up storage.UpdateConnection) (*models.Connection, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	c, ok := o.connections[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	up.ApplyTo(&c, time.Now())
	o.connections[id] = c
	return &c, nil
}

func (o *extendedOps) DeleteConnection(ctx context.Context, id uint) error {
	o.mu.Lock()
	delete(o.connections, id)
	o.mu.Unlock()
	return nil
}

func (o *extendedOps) ListConnections(ctx context.Context, clientID string) ([]models.Connection, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]models.Connection, 0)
	for _, c := range o.connections {
		if c.ClientID == clientID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (o *extendedOps) ValidateConnection(ctx context.Context, id uint) (bool, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	c, ok := o.connections[id]
	return ok && c.IsActive, nil
}

// findClientIDByInstance resolves a messaging instance back to its tenant.
func (o *extendedOps) findClientIDByInstance(instanceURL string) (string, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	for _, c := range o.connections {
		if c.Instance == instanceURL {
			return c.ClientID, true
		}
	}
	return "", false
}

// -------- Professional availability --------

func (o *extendedOps) GetProfessionalAvailability(ctx context.Context, id string) (*models.ProfessionalAvailability, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	a, ok := o.availability[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &a, nil
}

func (o *extendedOps) CreateProfessionalAvailability(ctx context.Context, in storage.InsertAvailability) (*models.ProfessionalAvailability, error) {
	a := storage.BuildAvailability(in, storage.NewID(), time.Now())

	o.mu.Lock()
	o.availability[a.ID] = a
	o.mu.Unlock()

	return &a, nil
}

func (o *extendedOps) UpdateProfessionalAvailability(ctx context.Context, id string, up storage.UpdateAvailability) (*models.ProfessionalAvailability, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	a, ok := o.availability[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	up.ApplyTo(&a, time.Now())
	o.availability[id] = a
	return &a, nil
}

func (o *extendedOps) DeleteProfessionalAvailability(ctx context.Context, id string) error {
	o.mu.Lock()
	delete(o.availability, id)
	o.mu.Unlock()
	return nil
}

func (o *extendedOps) ListProfessionalAvailability(ctx context.Context, professionalID string) ([]models.ProfessionalAvailability, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]models.ProfessionalAvailability, 0)
	for _, a := range o.availability {
		if a.ProfessionalID == professionalID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (o *extendedOps) ListProfessionalAvailabilityByClient(ctx context.Context, clientID string) ([]models.ProfessionalAvailability, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]models.ProfessionalAvailability, 0)
	for _, a := range o.availability {
		if a.ClientID == clientID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (o *extendedOps) UpdateMonthlyAvailability(ctx context.Context, in storage.MonthlyAvailability) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	for id, a := range o.availability {
		if a.ProfessionalID == in.ProfessionalID && len(a.Date) >= 7 && a.Date[:7] == in.Month {
			delete(o.availability, id)
		}
	}

	now := time.Now()
	for _, slot := range in.Slots {
		d, err := time.Parse("2006-01-02", slot.Date)
		if err != nil {
			return err
		}
		active := true
		if slot.IsActive != nil {
			active = *slot.IsActive
		}
		a := models.ProfessionalAvailability{
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
		}
		o.availability[a.ID] = a
	}
	return nil
}

func (o *extendedOps) generateNextMonth(clientID string, loc *time.Location) {
	o.mu.Lock()
	defer o.mu.Unlock()

	existing := make([]models.ProfessionalAvailability, 0)
	for _, a := range o.availability {
		if a.ClientID == clientID {
			existing = append(existing, a)
		}
	}

	now := time.Now()
	for _, a := range storage.ProjectNextMonth(existing, now, loc) {
		a.ID = storage.NewID()
		a.CreatedAt = now
		a.UpdatedAt = now
		o.availability[a.ID] = a
	}
}

// -------- Subscription / billing --------

func (o *extendedOps) ListSubscriptionPlans(ctx context.Context) ([]models.SubscriptionPlan, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]models.SubscriptionPlan, 0, len(o.plans))
	for _, p := range o.plans {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out, nil
}

func (o *extendedOps) GetSubscriptionPlan(ctx context.Context, id string) (*models.SubscriptionPlan, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	p, ok := o.plans[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (o *extendedOps) CreateSubscriptionPlan(ctx context.Context, in storage.InsertSubscriptionPlan) (*models.SubscriptionPlan, error) {
	p := storage.BuildSubscriptionPlan(in, storage.NewID(), time.Now())

	o.mu.Lock()
	o.plans[p.ID] = p
	o.mu.Unlock()

	return &p, nil
}

func (o *extendedOps) ListSubscriptions(ctx context.Context, clientID string) ([]models.Subscription, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]models.Subscription, 0)
	for _, s := range o.subscriptions {
		if s.ClientID == clientID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (o *extendedOps) GetSubscription(ctx context.Context, id string) (*models.Subscription, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	s, ok := o.subscriptions[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &s, nil
}

func (o *extendedOps) CreateSubscription(ctx context.Context, in storage.InsertSubscription) (*models.Subscription, error) {
	s := storage.BuildSubscription(in, storage.NewID(), time.Now())

	o.mu.Lock()
	o.subscriptions[s.ID] = s
	o.mu.Unlock()

	return &s, nil
}

func (o *extendedOps) ListInvoices(ctx context.Context, clientID string) ([]models.Invoice, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]models.Invoice, 0)
	for _, inv := range o.invoices {
		if inv.ClientID == clientID {
			out = append(out, inv)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (o *extendedOps) ListPayments(ctx context.Context, clientID string) ([]models.Payment, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]models.Payment, 0)
	for _, p := range o.payments {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// -------- Backup --------

func (o *extendedOps) CreateBackup(ctx context.Context, b *models.Backup) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if b.ID == "" {
		b.ID = storage.NewID()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
	o.backups[b.ID] = *b
	return nil
}

func (o *extendedOps) ListBackups(ctx context.Context, clientID string) ([]models.Backup, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]models.Backup, 0)
	for _, b := range o.backups {
		if b.ClientID == clientID {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// -------- Audit --------

func (o *extendedOps) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	log.ID = o.nextAuditID
	o.nextAuditID++
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	o.auditLogs = append(o.auditLogs, *log)
	return nil
}

func (o *extendedOps) ListAuditLogs(ctx context.Context, clientID string, limit int) ([]models.AuditLog, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]models.AuditLog, 0)
	for i := len(o.auditLogs) - 1; i >= 0; i-- {
		if o.auditLogs[i].ClientID == clientID {
			out = append(out, o.auditLogs[i])
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}
