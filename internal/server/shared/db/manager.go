// Package db wires repository implementations to their backing store.
package db

import (
	"context"
	"database/sql"

	"github.com/JayatheerthP/OraBank/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Close() error
}
