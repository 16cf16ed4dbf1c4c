package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/JayatheerthP/OraBank/internal/shared"
)

// pgUniqueViolation is the SQLSTATE raised when the email unique constraint
// rejects an insert. The signup path checks existence first, but two
// concurrent signups can both pass that check; the constraint decides the
// race and we surface the loser as a duplicate-email failure.
const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *User) (*User, error) {
	now := time.Now()
	user.ID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now

	query :=
		`INSERT INTO users (user_id, email, password_hash, phone_number, first_name, last_name,
		                    date_of_birth, address, is_active, is_locked, failed_login_attempts,
		                    created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 `

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.PhoneNumber, user.FirstName, user.LastName,
		user.DateOfBirth, user.Address, user.IsActive, user.IsLocked, user.FailedLoginAttempts,
		user.CreatedAt, user.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, shared.ErrorEmailAlreadyExists
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := selectUserQuery + ` WHERE user_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	query := selectUserQuery + ` WHERE email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("error performing sql request: %w", err)
	}

	return exists, nil
}

func (r *PostgresRepository) Update(ctx context.Context, user *User) (*User, error) {
	user.UpdatedAt = time.Now()

	query :=
		`UPDATE users
		 SET email = $2, password_hash = $3, phone_number = $4, first_name = $5, last_name = $6,
		     date_of_birth = $7, address = $8, is_active = $9, is_locked = $10,
		     failed_login_attempts = $11, updated_at = $12
		 WHERE user_id = $1
		 `

	res, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.PhoneNumber, user.FirstName, user.LastName,
		user.DateOfBirth, user.Address, user.IsActive, user.IsLocked, user.FailedLoginAttempts,
		user.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	if affected == 0 {
		return nil, shared.ErrorNotFound
	}

	return user, nil
}

const selectUserQuery = `SELECT user_id, email, password_hash, phone_number, first_name, last_name,
       date_of_birth, address, is_active, is_locked, failed_login_attempts, created_at, updated_at
  FROM users`

func (r *PostgresRepository) scanOne(row *sql.Row) (*User, error) {
	user := &User{}

	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.PhoneNumber,
		&user.FirstName, &user.LastName, &user.DateOfBirth, &user.Address,
		&user.IsActive, &user.IsLocked, &user.FailedLoginAttempts,
		&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return user, nil
}
