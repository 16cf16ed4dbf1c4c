// Package auth implements issuing and validation of the signed bearer tokens
// used to authenticate API requests. Tokens are self-contained: HS256 over a
// shared secret plus an expiry, with no server-side session registry.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/JayatheerthP/OraBank/internal/logging"
	"github.com/JayatheerthP/OraBank/internal/shared"
)

// minSecretLen is the minimum HMAC secret length accepted for HS256.
const minSecretLen = 32

// Claims carries the standard registered claims plus the user identity
// fields embedded for the convenience of downstream services.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
}

// TokenService signs and verifies access tokens with a process-wide secret.
// All methods are safe for concurrent use.
type TokenService struct {
	signingKey      []byte
	validitySeconds int64
	logger          logging.Logger
}

// NewTokenService validates the configured secret and returns a ready
// service. A short secret is a fatal configuration error, reported here
// rather than on the request path.
func NewTokenService(secretKey string, validitySeconds int64, logger logging.Logger) (*TokenService, error) {
	if len(secretKey) < minSecretLen {
		return nil, fmt.Errorf("secret must be at least %d bytes: %w", minSecretLen, shared.ErrorWeakSecret)
	}

	return &TokenService{
		signingKey:      []byte(secretKey),
		validitySeconds: validitySeconds,
		logger:          logger.With("module", "token_service"),
	}, nil
}

// Generate issues a token for the given user. The subject and the userId
// claim both carry the user id; email and first name ride along so that
// consumers can greet the user without a profile lookup.
func (s *TokenService) Generate(userID uuid.UUID, email string, firstName string) (string, error) {
	now := time.Now()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.validitySeconds) * time.Second)),
		},
		UserID:    userID.String(),
		Email:     email,
		FirstName: firstName,
	})

	tokenString, err := token.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	return tokenString, nil
}

// Validate reports whether the token is well-formed, correctly signed and
// unexpired. It never returns an error: validation sits on the hot request
// path, so failures are logged and collapsed into false.
func (s *TokenService) Validate(ctx context.Context, tokenString string) bool {
	if _, err := s.parse(tokenString); err != nil {
		s.logger.Warn(ctx, "token validation failed", "error", err.Error())
		return false
	}
	return true
}

// ExtractUserID re-parses the token (signature-verified) and returns the
// subject as a user id. Callers are expected to call Validate first; a
// malformed token still fails cleanly here.
func (s *TokenService) ExtractUserID(tokenString string) (uuid.UUID, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error extracting user id: %w", shared.ErrorInvalidToken)
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("subject is not a valid user id: %w", shared.ErrorInvalidToken)
	}

	return userID, nil
}

// ExpiresIn returns the configured token lifetime in seconds, used for the
// expiresIn field of signin responses.
func (s *TokenService) ExpiresIn() int64 {
	return s.validitySeconds
}

func (s *TokenService) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, shared.ErrorInvalidToken
	}

	return claims, nil
}
