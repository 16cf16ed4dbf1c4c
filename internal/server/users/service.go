package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/JayatheerthP/OraBank/internal/logging"
	"github.com/JayatheerthP/OraBank/internal/server/auth"
	"github.com/JayatheerthP/OraBank/internal/server/notifications"
	"github.com/JayatheerthP/OraBank/internal/server/password"
	"github.com/JayatheerthP/OraBank/internal/shared"
)

// SignUpInput carries the validated fields of a signup request.
type SignUpInput struct {
	Email       string
	Password    string
	PhoneNumber string
	FirstName   string
	LastName    string
	DateOfBirth time.Time
	Address     string
}

// SignInResult is returned on successful authentication.
type SignInResult struct {
	Token     string
	UserID    uuid.UUID
	ExpiresIn int64
}

// Service composes the credential store, password hasher, lockout guard,
// token service and notification dispatcher into the signup/signin use cases.
type Service struct {
	repo     Repository
	guard    *LockoutGuard
	hasher   password.Hasher
	tokens   *auth.TokenService
	notifier notifications.Notifier
	logger   logging.Logger
}

func NewService(repo Repository, guard *LockoutGuard, hasher password.Hasher,
	tokens *auth.TokenService, notifier notifications.Notifier, logger logging.Logger) *Service {
	return &Service{
		repo:     repo,
		guard:    guard,
		hasher:   hasher,
		tokens:   tokens,
		notifier: notifier,
		logger:   logger.With("module", "user_service"),
	}
}

// SignUp registers a new account. The email existence check and the insert
// are not atomic; a concurrent signup racing past the check loses at the
// store's unique constraint, which the repository reports as the same
// duplicate-email failure.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*User, error) {
	exists, err := s.repo.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email existence: %w", err)
	}
	if exists {
		s.logger.Warn(ctx, "signup rejected, email already registered", "email", in.Email)
		return nil, shared.ErrorEmailAlreadyExists
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &User{
		Email:               in.Email,
		PasswordHash:        digest,
		PhoneNumber:         in.PhoneNumber,
		FirstName:           in.FirstName,
		LastName:            in.LastName,
		DateOfBirth:         in.DateOfBirth,
		Address:             in.Address,
		IsActive:            true,
		IsLocked:            false,
		FailedLoginAttempts: 0,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, shared.ErrorEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	s.logger.Info(ctx, "user registered", "userId", user.ID, "email", user.Email)

	// best effort: signup succeeds regardless of notification outcome
	s.notifier.NotifySignup(ctx, user.Email, user.FirstName)

	return user, nil
}

// SignIn authenticates a user and issues a bearer token.
func (s *Service) SignIn(ctx context.Context, email, plaintext string) (*SignInResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrorNotFound) {
			s.logger.Warn(ctx, "signin with unknown email", "email", email)
			return nil, shared.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	if err := s.guard.CheckAdmission(user); err != nil {
		s.logger.Warn(ctx, "signin rejected, account locked", "userId", user.ID)
		return nil, err
	}

	if !s.hasher.Verify(plaintext, user.PasswordHash) {
		locked, err := s.guard.OnFailedAttempt(ctx, user)
		if err != nil {
			return nil, err
		}
		if locked {
			return nil, shared.ErrorAccountLocked
		}
		s.logger.Warn(ctx, "signin with invalid credentials",
			"userId", user.ID, "failedAttempts", user.FailedLoginAttempts)
		return nil, shared.ErrorInvalidCredentials
	}

	if err := s.guard.OnSuccessfulAttempt(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(user.ID, user.Email, user.FirstName)
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	s.logger.Info(ctx, "signin successful", "userId", user.ID)

	return &SignInResult{
		Token:     token,
		UserID:    user.ID,
		ExpiresIn: s.tokens.ExpiresIn(),
	}, nil
}

// GetUser returns the full profile of the user with the given id.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetStatus returns the account state of the user with the given id. The
// status projection is built by the HTTP layer; the lookup is shared.
func (s *Service) GetStatus(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}
