// Package postgres implements the storage contract over gorm. It mirrors
// the in-memory backend's semantics; records are built through the shared
// storage.Build* helpers so defaults never drift between backends.
package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

type Store struct {
	db       *gorm.DB
	sessions SessionBackend
}

// New builds a postgres-backed store. Pass NewGormSessions(db) or
// NewRedisSessions(client) for the session backend.
func New(db *gorm.DB, sessions SessionBackend) *Store {
	return &Store{db: db, sessions: sessions}
}

func wrap(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return storage.ErrNotFound
	}
	return err
}

// Compile-time check
var _ storage.Storage = (*Store)(nil)
