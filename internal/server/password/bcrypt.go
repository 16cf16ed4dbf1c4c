// Package password provides the one-way credential hashing capability.
// Digests are never compared by equality, only through Verify.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes plaintext credentials and verifies candidates against a
// stored digest.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

var ErrEmptyPassword = errors.New("password must not be empty")

// BcryptHasher implements Hasher with bcrypt.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher() *BcryptHasher {
	return &BcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}

	return string(digest), nil
}

func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
