package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/semprecheioapp/semprecheio-api/internal/models"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

type clientOps struct {
	mu      sync.RWMutex
	clients map[string]models.Client
}

func newClientOps() *clientOps {
	return &clientOps{clients: make(map[string]models.Client)}
}

func (o *clientOps) GetClient(ctx context.Context, id string) (*models.Client, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	c, ok := o.clients[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &c, nil
}

func (o *clientOps) GetClientByEmail(ctx context.Context, email string) (*models.Client, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	for _, c := range o.clients {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (o *clientOps) CreateClient(ctx context.Context, in storage.InsertClient) (*models.Client, error) {
	var hash *string
	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hashed)
		hash = &h
	}

	c := storage.BuildClient(in, storage.NewID(), hash, time.Now())

	o.mu.Lock()
	o.clients[c.ID] = c
	o.mu.Unlock()

	return &c, nil
}

func (o *clientOps) ValidateClient(ctx context.Context, email, password string) (*models.Client, error) {
	c, err := o.GetClientByEmail(ctx, email)
	if err != nil || c.PasswordHash == nil {
		return nil, storage.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(*c.PasswordHash), []byte(password)) != nil {
		return nil, storage.ErrInvalidCredentials
	}
	return c, nil
}

func (o *clientOps) UpdateClient(ctx context.Context, id string, up storage.UpdateClient) (*models.Client, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	c, ok := o.clients[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	up.ApplyTo(&c)
	o.clients[id] = c
	return &c, nil
}

func (o *clientOps) DeleteClient(ctx context.Context, id string) error {
	o.mu.Lock()
	delete(o.clients, id)
	o.mu.Unlock()
	return nil
}

func (o *clientOps) findByInstance(instanceURL string) (*models.Client, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	for _, c := range o.clients {
		if c.WhatsappInstanceURL != nil && *c.WhatsappInstanceURL == instanceURL {
			return &c, true
		}
	}
	return nil, false
}

// ListClients returns active tenants only, most recent first.
func (o *clientOps) ListClients(ctx context.Context) ([]models.Client, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]models.Client, 0, len(o.clients))
	for _, c := range o.clients {
		if c.IsActive {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
