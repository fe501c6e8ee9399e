package postgres

import (
	"context"
	"time"

	"github.com/semprecheioapp/semprecheio-api/internal/models"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

func (s *Store) GetProfessional(ctx context.Context, id string) (*models.Professional, error) {
	var p models.Professional
	if err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&p).Error; err != nil {
		return nil, wrap(err)
	}
	return &p, nil
}

func (s *Store) GetProfessionalByEmail(ctx context.Context, email string) (*models.Professional, error) {
	var p models.Professional
	if err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&p).Error; err != nil {
		return nil, wrap(err)
	}
	return &p, nil
}

func (s *Store) CreateProfessional(ctx context.Context, in storage.InsertProfessional) (*models.Professional, error) {
	p := storage.BuildProfessional(in, storage.NewID(), time.Now())
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) UpdateProfessional(ctx context.Context, id string, up storage.UpdateProfessional) (*models.Professional, error) {
	p, err := s.GetProfessional(ctx, id)
	if err != nil {
		return nil, err
	}
	up.ApplyTo(p)
	if err := s.db.WithContext(ctx).Save(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) DeleteProfessional(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.Professional{}, "id = ?", id).Error
}

func (s *Store) ListProfessionals(ctx context.Context, clientID string) ([]models.Professional, error) {
	var out []models.Professional
	if err := s.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
