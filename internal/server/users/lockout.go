package users

import (
	"context"
	"fmt"

	"github.com/JayatheerthP/OraBank/internal/logging"
	"github.com/JayatheerthP/OraBank/internal/shared"
)

// LockoutThreshold is the number of consecutive failed signin attempts after
// which an account is locked. Fixed policy, not configuration.
const LockoutThreshold = 5

// LockoutGuard enforces the account lockout policy. An account moves from
// active (0..4 recorded failures) to locked when the threshold is reached;
// there is no transition back out.
//
// Every transition is persisted before the guard returns, so a failed attempt
// is never silently lost. The counter update is read-modify-write against the
// store with no row locking; concurrent failures against the same account can
// under-count.
type LockoutGuard struct {
	repo   Repository
	logger logging.Logger
}

func NewLockoutGuard(repo Repository, logger logging.Logger) *LockoutGuard {
	return &LockoutGuard{
		repo:   repo,
		logger: logger.With("module", "lockout_guard"),
	}
}

// CheckAdmission is called before credential verification. A locked account
// short-circuits the signin without consuming a verify attempt.
func (g *LockoutGuard) CheckAdmission(user *User) error {
	if user.IsLocked {
		return shared.ErrorAccountLocked
	}
	return nil
}

// OnFailedAttempt records a failed verification. It increments the counter,
// locks the account once the threshold is reached, persists the result and
// reports whether the account is now locked so the caller can pick the
// response.
func (g *LockoutGuard) OnFailedAttempt(ctx context.Context, user *User) (bool, error) {
	user.FailedLoginAttempts++
	if user.FailedLoginAttempts >= LockoutThreshold {
		user.IsLocked = true
	}

	if _, err := g.repo.Update(ctx, user); err != nil {
		return false, fmt.Errorf("error persisting failed attempt: %w", err)
	}

	if user.IsLocked {
		g.logger.Warn(ctx, "account locked after repeated failed attempts",
			"userId", user.ID, "failedAttempts", user.FailedLoginAttempts)
	}

	return user.IsLocked, nil
}

// OnSuccessfulAttempt resets the failure counter after a successful
// authentication. Locked accounts never reach this point; admission is
// checked first.
func (g *LockoutGuard) OnSuccessfulAttempt(ctx context.Context, user *User) error {
	user.FailedLoginAttempts = 0

	if _, err := g.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("error resetting failed attempts: %w", err)
	}

	return nil
}
