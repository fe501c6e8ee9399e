package backup

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semprecheioapp/semprecheio-api/internal/storage"
	"github.com/semprecheioapp/semprecheio-api/internal/storage/memory"
)

func TestExportRendersTenantData(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	client, err := store.CreateClient(ctx, storage.InsertClient{
		Name:  "Salao D'Ouro",
		Email: "ouro@example.com",
	})
	require.NoError(t, err)

	prof, err := store.CreateProfessional(ctx, storage.InsertProfessional{
		Name: "Joao", Email: "joao@example.com", ClientID: client.ID,
	})
	require.NoError(t, err)

	_, err = store.CreateAppointment(ctx, storage.InsertAppointment{
		ClientID:    client.ID,
		ScheduledAt: time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
		Duration:    30,
	})
	require.NoError(t, err)

	data, err := Export(ctx, store, client.ID)
	require.NoError(t, err)
	sql := string(data)

	assert.Contains(t, sql, "-- client: "+client.ID)
	assert.Contains(t, sql, "INSERT INTO clients")
	assert.Contains(t, sql, "INSERT INTO professionals")
	assert.Contains(t, sql, "INSERT INTO appointments")
	assert.Contains(t, sql, prof.ID)

	// single quotes are doubled, never left raw
	assert.Contains(t, sql, "'Salao D''Ouro'")
	assert.NotContains(t, sql, "D'Ouro',")
}

func TestExportUnknownClient(t *testing.T) {
	store := memory.New()

	_, err := Export(context.Background(), store, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestExportScopedToOneTenant(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	mine, err := store.CreateClient(ctx, storage.InsertClient{Name: "Meu", Email: "meu@example.com"})
	require.NoError(t, err)
	other, err := store.CreateClient(ctx, storage.InsertClient{Name: "Outro", Email: "outro@example.com"})
	require.NoError(t, err)

	_, err = store.CreateCustomer(ctx, storage.InsertCustomer{Name: "Cliente Meu", ClientID: mine.ID})
	require.NoError(t, err)
	_, err = store.CreateCustomer(ctx, storage.InsertCustomer{Name: "Cliente Outro", ClientID: other.ID})
	require.NoError(t, err)

	data, err := Export(ctx, store, mine.ID)
	require.NoError(t, err)

	sql := string(data)
	assert.Contains(t, sql, "Cliente Meu")
	assert.False(t, strings.Contains(sql, "Cliente Outro"), "other tenants never leak into an export")
}
