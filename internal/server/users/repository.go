package users

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the durable store for user records. Implementations assign
// the id and stamp CreatedAt/UpdatedAt on Create, and refresh UpdatedAt on
// Update; entities never stamp themselves.
type Repository interface {
	Create(ctx context.Context, user *User) (*User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *User) (*User, error)
}
