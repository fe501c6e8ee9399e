package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/semprecheioapp/semprecheio-api/internal/models"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

// SessionBackend is where the postgres store keeps session tokens. The
// gorm backend expires lazily on Get; the redis backend leans on key TTL.
type SessionBackend interface {
	Create(ctx context.Context, session *models.Session) error
	Get(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

// -------- gorm table --------

type gormSessions struct {
	db *gorm.DB
}

func NewGormSessions(db *gorm.DB) SessionBackend {
	return &gormSessions{db: db}
}

func (b *gormSessions) Create(ctx context.Context, session *models.Session) error {
	return b.db.WithContext(ctx).Create(session).Error
}

func (b *gormSessions) Get(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	if err := b.db.WithContext(ctx).
		Where("id = ?", token).
		First(&session).Error; err != nil {
		return nil, wrap(err)
	}

	if !time.Now().Before(session.ExpiresAt) {
		b.db.WithContext(ctx).Delete(&models.Session{}, "id = ?", token)
		return nil, storage.ErrNotFound
	}
	return &session, nil
}

func (b *gormSessions) Delete(ctx context.Context, token string) error {
	return b.db.WithContext(ctx).Delete(&models.Session{}, "id = ?", token).Error
}

// -------- redis --------

type redisSessions struct {
	rdb *redis.Client
}

func NewRedisSessions(rdb *redis.Client) SessionBackend {
	return &redisSessions{rdb: rdb}
}

func sessionKey(token string) string {
	return "session:" + token
}

func (b *redisSessions) Create(ctx context.Context, session *models.Session) error {
	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Millisecond
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return b.rdb.Set(ctx, sessionKey(session.ID), payload, ttl).Err()
}

func (b *redisSessions) Get(ctx context.Context, token string) (*models.Session, error) {
	payload, err := b.rdb.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var session models.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	if !time.Now().Before(session.ExpiresAt) {
		b.rdb.Del(ctx, sessionKey(token))
		return nil, storage.ErrNotFound
	}
	return &session, nil
}

func (b *redisSessions) Delete(ctx context.Context, token string) error {
	return b.rdb.Del(ctx, sessionKey(token)).Err()
}
