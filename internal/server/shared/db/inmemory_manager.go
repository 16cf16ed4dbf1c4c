package db

import (
	"context"
	"database/sql"

	"github.com/JayatheerthP/OraBank/internal/server/users"
)

// InMemoryRepositoryManager backs the repositories with process memory.
// Used by tests and local runs without a database.
type InMemoryRepositoryManager struct {
	users users.Repository
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{users: users.NewInMemoryRepository()}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}
