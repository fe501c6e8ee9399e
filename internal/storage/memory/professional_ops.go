package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/semprecheioapp/semprecheio-api/internal/models"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

type professionalOps struct {
	mu            sync.RWMutex
	professionals map[string]models.Professional
}

func newProfessionalOps() *professionalOps {
	return &professionalOps{professionals: make(map[string]models.Professional)}
}

func (o *professionalOps) GetProfessional(ctx context.Context, id string) (*models.Professional, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	p, ok := o.professionals[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &p, nil
}

func (o *professionalOps) GetProfessionalByEmail(ctx context.Context, email string) (*models.Professional, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	for _, p := range o.professionals {
		if p.Email == email {
			return &p, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (o *professionalOps) CreateProfessional(ctx context.Context, in storage.InsertProfessional) (*models.Professional, error) {
	p := storage.BuildProfessional(in, storage.NewID(), time.Now())

	o.mu.Lock()
	o.professionals[p.ID] = p
	o.mu.Unlock()

	return &p, nil
}

func (o *professionalOps) UpdateProfessional(ctx context.Context, id string, up storage.UpdateProfessional) (*models.Professional, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	p, ok := o.professionals[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	up.ApplyTo(&p)
	o.professionals[id] = p
	return &p, nil
}

func (o *professionalOps) DeleteProfessional(ctx context.Context, id string) error {
	o.mu.Lock()
	delete(o.professionals, id)
	o.mu.Unlock()
	return nil
}

func (o *professionalOps) ListProfessionals(ctx context.Context, clientID string) ([]models.Professional, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]models.Professional, 0)
	for _, p := range o.professionals {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
