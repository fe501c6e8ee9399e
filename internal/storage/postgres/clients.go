package postgres

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/semprecheioapp/semprecheio-api/internal/models"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

func (s *Store) GetClient(ctx context.Context, id string) (*models.Client, error) {
	var c models.Client
	if err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&c).Error; err != nil {
		return nil, wrap(err)
	}
	return &c, nil
}

func (s *Store) GetClientByEmail(ctx context.Context, email string) (*models.Client, error) {
	var c models.Client
	if err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&c).Error; err != nil {
		return nil, wrap(err)
	}
	return &c, nil
}

func (s *Store) CreateClient(ctx context.Context, in storage.InsertClient) (*models.Client, error) {
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
	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ValidateClient(ctx context.Context, email, password string) (*models.Client, error) {
	c, err := s.GetClientByEmail(ctx, email)
	if err != nil || c.PasswordHash == nil {
		return nil, storage.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(*c.PasswordHash), []byte(password)) != nil {
		return nil, storage.ErrInvalidCredentials
	}
	return c, nil
}

func (s *Store) UpdateClient(ctx context.Context, id string, up storage.UpdateClient) (*models.Client, error) {
	c, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	up.ApplyTo(c)
	if err := s.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Store) DeleteClient(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.Client{}, "id = ?", id).Error
}

func (s *Store) ListClients(ctx context.Context) ([]models.Client, error) {
	var out []models.Client
	if err := s.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
