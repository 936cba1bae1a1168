package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"chronicle-service/app/domain"
	"chronicle-service/app/port"
)

// UserRepository implements port.UserRepository for PostgreSQL
type UserRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewUserRepository creates a new PostgreSQL user repository
func NewUserRepository(db DatabaseIface, logger *slog.Logger) port.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger.With("component", "user_repository"),
	}
}

// Create inserts a new user row
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, username, password_hash, email, deactivated, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)`

	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.Deactivated,
		user.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			r.logger.Warn("duplicate user", "username", user.Username)
			return domain.ErrUserAlreadyExists
		}
		r.logger.Error("failed to create user", "username", user.Username, "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.logger.Info("user created", "username", user.Username)
	return nil
}

// GetByUsername retrieves a user by its unique username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, password_hash, COALESCE(email, ''), deactivated, created_at
		FROM users
		WHERE username = $1`

	user := &domain.User{}
	err := r.db.QueryRow(ctx, query, username).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.Deactivated,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.logger.Error("failed to get user", "username", username, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// ExistsByUsername reports whether a username is already registered
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, username).Scan(&exists); err != nil {
		r.logger.Error("failed to check username", "username", username, "error", err)
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return exists, nil
}

// ExistsByEmail reports whether an email is already registered
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		r.logger.Error("failed to check email", "error", err)
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return exists, nil
}

// SetDeactivated flips the deactivated flag for a user
func (r *UserRepository) SetDeactivated(ctx context.Context, username string, deactivated bool) error {
	query := `
		UPDATE users
		SET deactivated = $2
		WHERE username = $1`

	tag, err := r.db.Exec(ctx, query, username, deactivated)
	if err != nil {
		r.logger.Error("failed to update deactivated flag", "username", username, "error", err)
		return fmt.Errorf("failed to update deactivated flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	r.logger.Info("user deactivated flag updated", "username", username, "deactivated", deactivated)
	return nil
}

// Delete removes a user row
func (r *UserRepository) Delete(ctx context.Context, username string) error {
	query := `DELETE FROM users WHERE username = $1`

	tag, err := r.db.Exec(ctx, query, username)
	if err != nil {
		r.logger.Error("failed to delete user", "username", username, "error", err)
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}

	r.logger.Info("user deleted", "username", username)
	return nil
}
