package users

import (
	"time"

	"github.com/google/uuid"
)

// User is the durable account record. PasswordHash is a bcrypt digest and is
// only ever checked through the password hasher, never compared directly.
//
// IsActive defaults to true and nothing in this service flips it; it is
// reserved for administrative action. IsLocked is set by the lockout guard
// once the failed-attempt threshold is reached and is never cleared here.
type User struct {
	ID                  uuid.UUID
	Email               string
	PasswordHash        string
	PhoneNumber         string
	FirstName           string
	LastName            string
	DateOfBirth         time.Time
	Address             string
	IsActive            bool
	IsLocked            bool
	FailedLoginAttempts int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
