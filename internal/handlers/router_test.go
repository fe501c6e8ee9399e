package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/semprecheioapp/semprecheio-api/internal/config"
	"github.com/semprecheioapp/semprecheio-api/internal/routes"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
	"github.com/semprecheioapp/semprecheio-api/internal/storage/memory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testEnv struct {
	router *gin.Engine
	store  *memory.Store
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		StorageDriver:   "memory",
		JWTSecret:       "test-secret",
		SessionTTLHours: 24,
	}
	store := memory.New()

	r := gin.New()
	routes.RegisterRoutes(r, store, cfg, zap.NewNop())

	return &testEnv{router: r, store: store}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// login registers an admin user and returns the session cookie.
func (e *testEnv) login(t *testing.T) *http.Cookie {
	t.Helper()

	w := e.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "Admin",
		"email":    "admin@example.com",
		"password": "senha123",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = e.do(t, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "senha123",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	for _, c := range w.Result().Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	t.Fatal("login response did not set the session cookie")
	return nil
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.login(t)

	w := env.do(t, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "admin@example.com",
		"password": "errada",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/auth/login", gin.H{"email": "admin@example.com"}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterRejectsDisposableDomains(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register", gin.H{
		"name":     "Spam",
		"email":    "spam@mailinator.com",
		"password": "senha123",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthUserRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	w := env.do(t, http.MethodGet, "/api/auth/user", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "admin@example.com", resp.User.Email)
	assert.Equal(t, "user", resp.User.Role)

	w = env.do(t, http.MethodGet, "/api/auth/user", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// logout invalidates the session
	w = env.do(t, http.MethodPost, "/api/auth/logout", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodGet, "/api/auth/user", nil, cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSecuredRoutesRequireSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/clients", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/api/clients", nil, &http.Cookie{Name: "session_id", Value: "forged"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestClientCRUD(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	w := env.do(t, http.MethodPost, "/api/clients", gin.H{
		"name":  "Salao Centro",
		"email": "centro@example.com",
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID   string `json:"id"`
		Plan string `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "basic", created.Plan)

	w = env.do(t, http.MethodPut, "/api/clients/"+created.ID, gin.H{"plan": "premium"}, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/clients/"+created.ID, nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var got struct {
		Plan string `json:"plan"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "premium", got.Plan)

	w = env.do(t, http.MethodGet, "/api/clients", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)

	w = env.do(t, http.MethodDelete, "/api/clients/"+created.ID, nil, cookie)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodGet, "/api/clients/"+created.ID, nil, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// writes are audited asynchronously
	require.Eventually(t, func() bool {
		logs, err := env.store.ListAuditLogs(context.Background(), created.ID, 10)
		return err == nil && len(logs) >= 2
	}, time.Second, 10*time.Millisecond)
}

func TestListEndpointsRequireClientID(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	for _, path := range []string{
		"/api/professionals",
		"/api/specialties",
		"/api/services",
		"/api/appointments",
		"/api/customers",
		"/api/connections",
		"/api/audit-logs",
	} {
		w := env.do(t, http.MethodGet, path, nil, cookie)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestAppointmentCancelFlow(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	client, err := env.store.CreateClient(context.Background(), storage.InsertClient{
		Name: "Salao", Email: "salao@example.com",
	})
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/appointments", gin.H{
		"client_id":    client.ID,
		"scheduled_at": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
		"duration":     45,
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var appt struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appt))
	assert.Equal(t, "scheduled", appt.Status)

	w = env.do(t, http.MethodPost, "/api/appointments/"+appt.ID+"/cancel", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/appointments/"+appt.ID, nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appt))
	assert.Equal(t, "cancelled", appt.Status)
}

func TestConnectionTokenIssuedWhenMissing(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	client, err := env.store.CreateClient(context.Background(), storage.InsertClient{
		Name: "Salao", Email: "salao@example.com",
	})
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/connections", gin.H{
		"instance":  "https://evo.example.com/salao",
		"host":      "evo.example.com",
		"client_id": client.ID,
	}, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var conn struct {
		ID    uint   `json:"id"`
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conn))
	assert.NotEmpty(t, conn.Token, "a signed token is issued when none is supplied")

	w = env.do(t, http.MethodGet, "/api/connections/client-by-instance?instance_url=https://evo.example.com/salao", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var resolved struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resolved))
	assert.Equal(t, client.ID, resolved.ID)
}

func TestClientPortalFlow(t *testing.T) {
	env := newTestEnv(t)

	password := "segredo123"
	client, err := env.store.CreateClient(context.Background(), storage.InsertClient{
		Name:     "Salao",
		Email:    "salao@example.com",
		Password: &password,
	})
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/auth/client/login", gin.H{
		"email":    "salao@example.com",
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	req := httptest.NewRequest(http.MethodGet, "/api/portal/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var me struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, client.ID, me.ID)

	// garbage tokens are rejected
	req = httptest.NewRequest(http.MethodGet, "/api/portal/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/portal/me", nil)
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBillingCheckoutDisabledWithoutProvider(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	w := env.do(t, http.MethodPost, "/api/billing/checkout", gin.H{
		"client_id": "any",
		"plan_id":   "any",
	}, cookie)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestBackupReturnsInlineSQLWithoutBucket(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t)

	client, err := env.store.CreateClient(context.Background(), storage.InsertClient{
		Name: "Salao", Email: "salao@example.com",
	})
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/backups", gin.H{"client_id": client.ID}, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var result struct {
		Key    string `json:"key"`
		SQL    string `json:"sql"`
		Record struct {
			ID       string `json:"id"`
			Status   string `json:"status"`
			Size     int    `json:"size"`
			Location string `json:"location"`
		} `json:"record"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Contains(t, result.Key, client.ID)
	assert.Contains(t, result.SQL, "INSERT INTO clients")
	assert.Equal(t, len(result.SQL), result.Record.Size)
	assert.Equal(t, "completed", result.Record.Status)
	assert.NotEmpty(t, result.Record.ID)
	assert.Empty(t, result.Record.Location, "nothing is uploaded without a bucket")

	w = env.do(t, http.MethodGet, "/api/backups?client_id="+client.ID, nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	var history struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	assert.Equal(t, 1, history.Total)

	w = env.do(t, http.MethodPost, "/api/backups", gin.H{"client_id": "missing"}, cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
