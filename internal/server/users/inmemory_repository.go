package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JayatheerthP/OraBank/internal/shared"
)

// InMemoryRepository is a map-backed Repository used by tests and brokerless
// local runs. It copies users on the way in and out so callers cannot mutate
// stored state behind the lock.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*User
	byEmail map[string]uuid.UUID
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:    make(map[uuid.UUID]*User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *InMemoryRepository) Create(_ context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return nil, shared.ErrorEmailAlreadyExists
	}

	now := time.Now()
	u := *user
	u.ID = uuid.New()
	u.CreatedAt = now
	u.UpdatedAt = now

	r.byID[u.ID] = &u
	r.byEmail[u.Email] = u.ID

	out := u
	return &out, nil
}

func (r *InMemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return nil, shared.ErrorNotFound
	}

	out := *u
	return &out, nil
}

func (r *InMemoryRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, shared.ErrorNotFound
	}

	out := *r.byID[id]
	return &out, nil
}

func (r *InMemoryRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[email]
	return ok, nil
}

func (r *InMemoryRepository) Update(_ context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[user.ID]; !ok {
		return nil, shared.ErrorNotFound
	}

	u := *user
	u.UpdatedAt = time.Now()
	r.byID[u.ID] = &u
	r.byEmail[u.Email] = u.ID

	out := u
	return &out, nil
}
