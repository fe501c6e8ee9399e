package memory

import (
	"context"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/semprecheioapp/semprecheio-api/internal/models"
	"github.com/semprecheioapp/semprecheio-api/internal/storage"
)

// userOps owns the user and session collections. Sessions live next to
// users because resolving a session always ends in a user lookup.
type userOps struct {
	mu       sync.RWMutex
	users    map[uint]models.User
	sessions map[string]models.Session
	nextID   uint
}

func newUserOps() *userOps {
	return &userOps{
		users:    make(map[uint]models.User),
		sessions: make(map[string]models.Session),
		nextID:   1,
	}
}

func (o *userOps) GetUser(ctx context.Context, id uint) (*models.User, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	u, ok := o.users[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return &u, nil
}

func (o *userOps) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	for _, u := range o.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (o *userOps) CreateUser(ctx context.Context, in storage.InsertUser) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	id := o.nextID
	o.nextID++

	u := storage.BuildUser(in, id, string(hashed), time.Now())
	o.users[id] = u
	return &u, nil
}

func (o *userOps) ValidateUser(ctx context.Context, email, password string) (*models.User, error) {
	u, err := o.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, storage.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, storage.ErrInvalidCredentials
	}
	return u, nil
}

func (o *userOps) CreateSession(ctx context.Context, userID uint, expiresAt time.Time) (*models.Session, error) {
	token, err := storage.NewSessionToken()
	if err != nil {
		return nil, err
	}

	s := models.Session{
		ID:        token,
		UserID:    userID,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}

	o.mu.Lock()
	o.sessions[token] = s
	o.mu.Unlock()

	return &s, nil
}

// GetSession expires lazily: a session read at or past its deadline is
// removed as a side effect and reported as not found.
func (o *userOps) GetSession(ctx context.Context, token string) (*models.Session, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, ok := o.sessions[token]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if !time.Now().Before(s.ExpiresAt) {
		delete(o.sessions, token)
		return nil, storage.ErrNotFound
	}
	return &s, nil
}

func (o *userOps) DeleteSession(ctx context.Context, token string) error {
	o.mu.Lock()
	delete(o.sessions, token)
	o.mu.Unlock()
	return nil
}

func (o *userOps) GetUserBySession(ctx context.Context, token string) (*models.User, error) {
	s, err := o.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}
	return o.GetUser(ctx, s.UserID)
}
