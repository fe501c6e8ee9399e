package backup

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/semprecheioapp/semprecheio-api/internal/models"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

// Export renders one tenant's data as a plain SQL script. Rows come out
// in the order the storage layer lists them, so two exports of the same
// unchanged tenant are byte-identical.
func Export(ctx context.Context, store storage.Storage, clientID string) ([]byte, error) {
	client, err := store.GetClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("load client: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "-- semprecheio export\n-- client: %s\n-- generated_at: %s\n\n",
		client.ID, time.Now().UTC().Format(time.RFC3339))

	writeClient(&b, client)

	professionals, err := store.ListProfessionals(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	for i := range professionals {
		writeProfessional(&b, &professionals[i])
	}

	specialties, err := store.ListSpecialties(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list specialties: %w", err)
	}
	for i := range specialties {
		writeSpecialty(&b, &specialties[i])
	}

	services, err := store.ListServices(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	for i := range services {
		writeService(&b, &services[i])
	}

	customers, err := store.ListCustomers(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	for i := range customers {
		writeCustomer(&b, &customers[i])
	}

	appointments, err := store.ListAppointments(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	for i := range appointments {
		writeAppointment(&b, &appointments[i])
	}

	availability, err := store.ListProfessionalAvailabilityByClient(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("list availability: %w", err)
	}
	for i := range availability {
		writeAvailability(&b, &availability[i])
	}

	return []byte(b.String()), nil
}

// ---------- row rendering ----------

func writeClient(b *strings.Builder, c *models.Client) {
	fmt.Fprintf(b, "INSERT INTO clients (id, name, email, phone, is_active, plan, timezone, language, currency, created_at) VALUES (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s);\n",
		quote(c.ID), quote(c.Name), quote(c.Email), quoteNull(c.Phone),
		boolLit(c.IsActive), quote(c.Plan), quote(c.Timezone),
		quote(c.Language), quote(c.Currency), timeLit(c.CreatedAt))
}

func writeProfessional(b *strings.Builder, p *models.Professional) {
	fmt.Fprintf(b, "INSERT INTO professionals (id, name, email, phone, specialty_id, client_id, is_active, created_at) VALUES (%s, %s, %s, %s, %s, %s, %s, %s);\n",
		quote(p.ID), quote(p.Name), quote(p.Email), quoteNull(p.Phone),
		quoteNull(p.SpecialtyID), quote(p.ClientID), boolLit(p.IsActive), timeLit(p.CreatedAt))
}

func writeSpecialty(b *strings.Builder, s *models.Specialty) {
	fmt.Fprintf(b, "INSERT INTO specialties (id, name, description, color, service_id, client_id, is_active, created_at) VALUES (%s, %s, %s, %s, %s, %s, %s, %s);\n",
		quote(s.ID), quote(s.Name), quoteNull(s.Description), quote(s.Color),
		quoteNull(s.ServiceID), quote(s.ClientID), boolLit(s.IsActive), timeLit(s.CreatedAt))
}

func writeService(b *strings.Builder, s *models.Service) {
	fmt.Fprintf(b, "INSERT INTO services (id, name, category, description, duration, price, specialty_id, client_id, is_active, created_at) VALUES (%s, %s, %s, %s, %d, %s, %s, %s, %s, %s);\n",
		quote(s.ID), quote(s.Name), quoteNull(s.Category), quoteNull(s.Description),
		s.Duration, intNull(s.Price), quoteNull(s.SpecialtyID), quote(s.ClientID),
		boolLit(s.IsActive), timeLit(s.CreatedAt))
}

func writeCustomer(b *strings.Builder, c *models.Customer) {
	fmt.Fprintf(b, "INSERT INTO customers (id, name, email, phone, cpf_cnpj, notes, client_id, created_at) VALUES (%s, %s, %s, %s, %s, %s, %s, %s);\n",
		quote(c.ID), quote(c.Name), quoteNull(c.Email), quoteNull(c.Phone),
		quoteNull(c.CpfCnpj), quoteNull(c.Notes), quote(c.ClientID), timeLit(c.CreatedAt))
}

func writeAppointment(b *strings.Builder, a *models.Appointment) {
	fmt.Fprintf(b, "INSERT INTO appointments (id, client_id, professional_id, service_id, customer_id, scheduled_at, duration, status, notes, created_at) VALUES (%s, %s, %s, %s, %s, %s, %d, %s, %s, %s);\n",
		quote(a.ID), quote(a.ClientID), quoteNull(a.ProfessionalID), quoteNull(a.ServiceID),
		quoteNull(a.CustomerID), timeLit(a.ScheduledAt), a.Duration, quote(a.Status),
		quoteNull(a.Notes), timeLit(a.CreatedAt))
}

func writeAvailability(b *strings.Builder, a *models.ProfessionalAvailability) {
	fmt.Fprintf(b, "INSERT INTO professional_availability (id, professional_id, client_id, date, weekday, start_time, end_time, is_active) VALUES (%s, %s, %s, %s, %d, %s, %s, %s);\n",
		quote(a.ID), quote(a.ProfessionalID), quote(a.ClientID), quote(a.Date),
		a.Weekday, quote(a.StartTime), quote(a.EndTime), boolLit(a.IsActive))
}

// ---------- SQL literals ----------

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteNull(p *string) string {
	if p == nil {
		return "NULL"
	}
	return quote(*p)
}

func intNull(p *int) string {
	if p == nil {
		return "NULL"
	}
	return fmt.Sprintf("%d", *p)
}

func boolLit(v bool) string {
	if v {
		return "TRUE"
	}
	return "FALSE"
}

func timeLit(t time.Time) string {
	return quote(t.UTC().Format("2006-01-02 15:04:05"))
}
