package postgres

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/semprecheioapp/semprecheio-api/internal/models"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, wrap(err)
	}
	return &u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, wrap(err)
	}
	return &u, nil
}

func (s *Store) CreateUser(ctx context.Context, in storage.InsertUser) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := storage.BuildUser(in, 0, string(hashed), time.Now())
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Store) ValidateUser(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, storage.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, storage.ErrInvalidCredentials
	}
	return u, nil
}

func (s *Store) CreateSession(ctx context.Context, userID uint, expiresAt time.Time) (*models.Session, error) {
	token, err := storage.NewSessionToken()
	if err != nil {
		return nil, err
	}

	session := models.Session{
		ID:        token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Create(ctx, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Store) GetSession(ctx context.Context, token string) (*models.Session, error) {
	return s.sessions.Get(ctx, token)
}

func (s *Store) DeleteSession(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *Store) GetUserBySession(ctx context.Context, token string) (*models.User, error) {
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.GetUser(ctx, session.UserID)
}
