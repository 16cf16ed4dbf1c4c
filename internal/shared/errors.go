// Package shared defines sentinel errors used across the user service.
// Callers should match these values with errors.Is; the HTTP layer maps
// them to status codes.
package shared

import "errors"

var (
	// repository-level errors
	ErrorNotFound           = errors.New("user not found")
	ErrorEmailAlreadyExists = errors.New("user with this email already exists")

	// signin-specific errors
	ErrorInvalidCredentials = errors.New("invalid email or password")
	ErrorAccountLocked      = errors.New("account is locked")

	// token errors
	ErrorInvalidToken = errors.New("invalid token")
	ErrorWeakSecret   = errors.New("signing secret is too weak")

	// generic flow control
	ErrorInternal = errors.New("internal error")
)
