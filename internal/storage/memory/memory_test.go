package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semprecheioapp/semprecheio-api/internal/models"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
	"github.com/semprecheioapp/semprecheio-api/internal/storage/memory"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func newTestClient(t *testing.T, store *memory.Store, email string) *models.Client {
	t.Helper()
	client, err := store.CreateClient(context.Background(), storage.InsertClient{
		Name:     "Salao Teste",
		Email:    email,
		Password: strPtr("segredo123"),
	})
	require.NoError(t, err)
	return client
}

func TestCreateUserAppliesDefaults(t *testing.T) {
	store := memory.New()

	user, err := store.CreateUser(context.Background(), storage.InsertUser{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "senha123",
	})
	require.NoError(t, err)

	assert.NotZero(t, user.ID)
	assert.Equal(t, "user", user.Role)
	assert.NotEqual(t, "senha123", user.PasswordHash, "password must be stored hashed")
}

func TestValidateUserIndistinguishableFailures(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	_, err := store.CreateUser(ctx, storage.InsertUser{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "senha123",
	})
	require.NoError(t, err)

	user, err := store.ValidateUser(ctx, "ana@example.com", "senha123")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)

	_, errWrongPass := store.ValidateUser(ctx, "ana@example.com", "errada")
	_, errNoUser := store.ValidateUser(ctx, "ninguem@example.com", "senha123")
	assert.ErrorIs(t, errWrongPass, storage.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, storage.ErrInvalidCredentials)
}

func TestSessionLifecycle(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	user, err := store.CreateUser(ctx, storage.InsertUser{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "senha123",
	})
	require.NoError(t, err)

	session, err := store.CreateSession(ctx, user.ID, time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Len(t, session.ID, 64)

	got, err := store.GetUserBySession(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	require.NoError(t, store.DeleteSession(ctx, session.ID))
	_, err = store.GetSession(ctx, session.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// deleting twice is fine
	require.NoError(t, store.DeleteSession(ctx, session.ID))
}

func TestSessionExpiry(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	user, err := store.CreateUser(ctx, storage.InsertUser{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "senha123",
	})
	require.NoError(t, err)

	session, err := store.CreateSession(ctx, user.ID, time.Now().Add(30*time.Millisecond))
	require.NoError(t, err)

	_, err = store.GetSession(ctx, session.ID)
	require.NoError(t, err)

	time.Sleep(50 * time.Millisecond)

	_, err = store.GetSession(ctx, session.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// the expired record is gone, not just hidden
	_, err = store.GetUserBySession(ctx, session.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestCreateClientAppliesDefaults(t *testing.T) {
	store := memory.New()

	client := newTestClient(t, store, "salao@example.com")

	assert.True(t, client.IsActive)
	assert.Equal(t, "basic", client.Plan)
	assert.Equal(t, 5, client.MaxUsers)
	assert.Equal(t, 100, client.MaxAppointments)
	assert.Equal(t, 1, client.MaxStorage)
	assert.Equal(t, "America/Sao_Paulo", client.Timezone)
	assert.Equal(t, "pt-BR", client.Language)
	assert.Equal(t, "BRL", client.Currency)
	assert.Equal(t, 24, client.SessionTimeout)
	assert.True(t, client.EmailNotifications)
	assert.True(t, client.WhatsappNotifications)
	assert.False(t, client.SmsNotifications)
	assert.True(t, client.AutoBackup)
	assert.Equal(t, "daily", client.BackupFrequency)
	assert.True(t, client.GdprCompliant)
	assert.Equal(t, 365, client.DataRetentionDays)
}

func TestValidateClient(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	newTestClient(t, store, "salao@example.com")

	client, err := store.ValidateClient(ctx, "salao@example.com", "segredo123")
	require.NoError(t, err)
	assert.Equal(t, "salao@example.com", client.Email)

	_, err = store.ValidateClient(ctx, "salao@example.com", "errada")
	assert.ErrorIs(t, err, storage.ErrInvalidCredentials)

	// a client without a password can never log in
	noPass, err := store.CreateClient(ctx, storage.InsertClient{
		Name:  "Sem Senha",
		Email: "sem@example.com",
	})
	require.NoError(t, err)
	assert.Nil(t, noPass.PasswordHash)
	_, err = store.ValidateClient(ctx, "sem@example.com", "qualquer")
	assert.ErrorIs(t, err, storage.ErrInvalidCredentials)
}

func TestUpdateClientPartialPatch(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	client := newTestClient(t, store, "salao@example.com")

	updated, err := store.UpdateClient(ctx, client.ID, storage.UpdateClient{
		Phone: strPtr("+55 11 99999-0000"),
		Plan:  strPtr("premium"),
	})
	require.NoError(t, err)

	assert.Equal(t, client.Name, updated.Name)
	assert.Equal(t, "premium", updated.Plan)
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "+55 11 99999-0000", *updated.Phone)

	// credentials survive unrelated patches
	_, err = store.ValidateClient(ctx, "salao@example.com", "segredo123")
	assert.NoError(t, err)

	_, err = store.UpdateClient(ctx, "missing-id", storage.UpdateClient{})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListClientsActiveOnlyNewestFirst(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	first := newTestClient(t, store, "a@example.com")
	time.Sleep(2 * time.Millisecond)
	second := newTestClient(t, store, "b@example.com")
	time.Sleep(2 * time.Millisecond)
	third := newTestClient(t, store, "c@example.com")

	_, err := store.UpdateClient(ctx, second.ID, storage.UpdateClient{IsActive: boolPtr(false)})
	require.NoError(t, err)

	clients, err := store.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 2)
	assert.Equal(t, third.ID, clients[0].ID)
	assert.Equal(t, first.ID, clients[1].ID)
}

func TestDeleteClientIsIdempotent(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	client := newTestClient(t, store, "salao@example.com")

	require.NoError(t, store.DeleteClient(ctx, client.ID))
	require.NoError(t, store.DeleteClient(ctx, client.ID))

	_, err := store.GetClient(ctx, client.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListProfessionalsScopedByClient(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	clientA := newTestClient(t, store, "a@example.com")
	clientB := newTestClient(t, store, "b@example.com")

	_, err := store.CreateProfessional(ctx, storage.InsertProfessional{
		Name: "Joao", Email: "joao@example.com", ClientID: clientA.ID,
	})
	require.NoError(t, err)
	_, err = store.CreateProfessional(ctx, storage.InsertProfessional{
		Name: "Maria", Email: "maria@example.com", ClientID: clientB.ID,
	})
	require.NoError(t, err)

	forA, err := store.ListProfessionals(ctx, clientA.ID)
	require.NoError(t, err)
	require.Len(t, forA, 1)
	assert.Equal(t, "Joao", forA[0].Name)
}

func TestAppointmentsOrderedAndCancellable(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	client := newTestClient(t, store, "salao@example.com")
	base := time.Now().Add(24 * time.Hour)

	late, err := store.CreateAppointment(ctx, storage.InsertAppointment{
		ClientID: client.ID, ScheduledAt: base.Add(2 * time.Hour), Duration: 30,
	})
	require.NoError(t, err)
	early, err := store.CreateAppointment(ctx, storage.InsertAppointment{
		ClientID: client.ID, ScheduledAt: base, Duration: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentScheduled, early.Status)

	list, err := store.ListAppointments(ctx, client.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, early.ID, list[0].ID)
	assert.Equal(t, late.ID, list[1].ID)

	require.NoError(t, store.CancelAppointment(ctx, early.ID))
	got, err := store.GetAppointment(ctx, early.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentCancelled, got.Status)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt) || got.UpdatedAt.Equal(got.CreatedAt))

	// cancelling an unknown id is a no-op
	assert.NoError(t, store.CancelAppointment(ctx, "missing-id"))
}

func TestConnectionsSequentialIDs(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	client := newTestClient(t, store, "salao@example.com")

	c1, err := store.CreateConnection(ctx, storage.InsertConnection{
		Instance: "inst-1", Token: "t1", Host: "evo.example.com", ClientID: client.ID,
	})
	require.NoError(t, err)
	c2, err := store.CreateConnection(ctx, storage.InsertConnection{
		Instance: "inst-2", Token: "t2", Host: "evo.example.com", ClientID: client.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), c1.ID)
	assert.Equal(t, uint(2), c2.ID)

	valid, err := store.ValidateConnection(ctx, c1.ID)
	require.NoError(t, err)
	assert.True(t, valid)

	_, err = store.UpdateConnection(ctx, c1.ID, storage.UpdateConnection{IsActive: boolPtr(false)})
	require.NoError(t, err)
	valid, err = store.ValidateConnection(ctx, c1.ID)
	require.NoError(t, err)
	assert.False(t, valid)

	valid, err = store.ValidateConnection(ctx, 999)
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestGetClientByWhatsappInstance(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	direct, err := store.CreateClient(ctx, storage.InsertClient{
		Name:                "Direto",
		Email:               "direto@example.com",
		WhatsappInstanceURL: strPtr("https://evo.example.com/direto"),
	})
	require.NoError(t, err)

	viaConn := newTestClient(t, store, "conn@example.com")
	_, err = store.CreateConnection(ctx, storage.InsertConnection{
		Instance: "https://evo.example.com/conn", Token: "t", Host: "evo.example.com", ClientID: viaConn.ID,
	})
	require.NoError(t, err)

	got, err := store.GetClientByWhatsappInstance(ctx, "https://evo.example.com/direto")
	require.NoError(t, err)
	assert.Equal(t, direct.ID, got.ID)

	got, err = store.GetClientByWhatsappInstance(ctx, "https://evo.example.com/conn")
	require.NoError(t, err)
	assert.Equal(t, viaConn.ID, got.ID)

	_, err = store.GetClientByWhatsappInstance(ctx, "https://evo.example.com/nope")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateMonthlyAvailabilityReplacesMonth(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	client := newTestClient(t, store, "salao@example.com")
	profID := storage.NewID()

	old, err := store.CreateProfessionalAvailability(ctx, storage.InsertAvailability{
		ProfessionalID: profID,
		ClientID:       client.ID,
		Date:           "2026-09-07",
		Weekday:        1,
		StartTime:      "09:00",
		EndTime:        "12:00",
	})
	require.NoError(t, err)

	keep, err := store.CreateProfessionalAvailability(ctx, storage.InsertAvailability{
		ProfessionalID: profID,
		ClientID:       client.ID,
		Date:           "2026-10-05",
		Weekday:        1,
		StartTime:      "09:00",
		EndTime:        "12:00",
	})
	require.NoError(t, err)

	err = store.UpdateMonthlyAvailability(ctx, storage.MonthlyAvailability{
		ClientID:       client.ID,
		ProfessionalID: profID,
		Month:          "2026-09",
		Slots: []storage.MonthlySlotItem{
			{Date: "2026-09-14", StartTime: "10:00", EndTime: "16:00"},
		},
	})
	require.NoError(t, err)

	slots, err := store.ListProfessionalAvailability(ctx, profID)
	require.NoError(t, err)
	require.Len(t, slots, 2)

	dates := []string{slots[0].Date, slots[1].Date}
	assert.Contains(t, dates, "2026-09-14")
	assert.Contains(t, dates, keep.Date)
	assert.NotContains(t, dates, old.Date)

	for _, s := range slots {
		if s.Date == "2026-09-14" {
			assert.Equal(t, 1, s.Weekday, "weekday derived from the date")
			assert.Equal(t, "10:00", s.StartTime)
			assert.Equal(t, "16:00", s.EndTime)
		}
	}
}

func TestGenerateNextMonthAvailability(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	client := newTestClient(t, store, "salao@example.com")
	profID := storage.NewID()

	today := time.Now().UTC()
	_, err := store.CreateProfessionalAvailability(ctx, storage.InsertAvailability{
		ProfessionalID: profID,
		ClientID:       client.ID,
		Date:           today.Format("2006-01-02"),
		Weekday:        int(today.Weekday()),
		StartTime:      "08:00",
		EndTime:        "17:00",
	})
	require.NoError(t, err)

	require.NoError(t, store.GenerateNextMonthAvailability(ctx, client.ID, "UTC"))

	nextMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).
		AddDate(0, 1, 0).Format("2006-01")

	slots, err := store.ListProfessionalAvailability(ctx, profID)
	require.NoError(t, err)

	var generated int
	for _, s := range slots {
		if len(s.Date) >= 7 && s.Date[:7] == nextMonth {
			generated++
			assert.Equal(t, "08:00", s.StartTime)
			assert.Equal(t, "17:00", s.EndTime)
			assert.Equal(t, int(today.Weekday()), s.Weekday)
			assert.True(t, s.IsActive)
			assert.NotEmpty(t, s.ID)
		}
	}
	// every month has at least four of each weekday
	assert.GreaterOrEqual(t, generated, 4)
}

func TestAuditLogsNewestFirstWithLimit(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	client := newTestClient(t, store, "salao@example.com")

	for _, action := range []string{"first", "second", "third"} {
		require.NoError(t, store.CreateAuditLog(ctx, &models.AuditLog{
			ClientID: client.ID,
			Action:   action,
			Entity:   "client",
		}))
	}
	// another tenant's entries never leak in
	require.NoError(t, store.CreateAuditLog(ctx, &models.AuditLog{
		ClientID: "other-client",
		Action:   "noise",
		Entity:   "client",
	}))

	logs, err := store.ListAuditLogs(ctx, client.ID, 2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "third", logs[0].Action)
	assert.Equal(t, "second", logs[1].Action)
}

func TestSubscriptionPlansSortedByPrice(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	_, err := store.CreateSubscriptionPlan(ctx, storage.InsertSubscriptionPlan{Name: "Premium", Price: 9900})
	require.NoError(t, err)
	_, err = store.CreateSubscriptionPlan(ctx, storage.InsertSubscriptionPlan{Name: "Basic", Price: 2900})
	require.NoError(t, err)

	plans, err := store.ListSubscriptionPlans(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "Basic", plans[0].Name)
	assert.Equal(t, "Premium", plans[1].Name)
}
