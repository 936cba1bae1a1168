package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"chronicle-service/app/domain"
	"chronicle-service/app/port"
)

// PreferenceRepository implements port.PreferenceRepository for PostgreSQL
type PreferenceRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewPreferenceRepository creates a new PostgreSQL preference repository
func NewPreferenceRepository(db DatabaseIface, logger *slog.Logger) port.PreferenceRepository {
	return &PreferenceRepository{
		db:     db,
		logger: logger.With("component", "preference_repository"),
	}
}

// Add inserts one (username, preference) pair
func (r *PreferenceRepository) Add(ctx context.Context, pref *domain.Preference) error {
	query := `INSERT INTO preferences (username, preference) VALUES ($1, $2)`

	_, err := r.db.Exec(ctx, query, pref.Username, pref.Preference)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPreferenceExists
		}
		r.logger.Error("failed to add preference",
			"username", pref.Username,
			"preference", pref.Preference,
			"error", err)
		return fmt.Errorf("failed to add preference: %w", err)
	}

	r.logger.Info("preference added", "username", pref.Username, "preference", pref.Preference)
	return nil
}

// ListByUsername returns the user's preferences in storage order
func (r *PreferenceRepository) ListByUsername(ctx context.Context, username string) ([]domain.Preference, error) {
	query := `SELECT preference FROM preferences WHERE username = $1`

	rows, err := r.db.Query(ctx, query, username)
	if err != nil {
		r.logger.Error("failed to list preferences", "username", username, "error", err)
		return nil, fmt.Errorf("failed to list preferences: %w", err)
	}
	defer rows.Close()

	var prefs []domain.Preference
	for rows.Next() {
		var p domain.Preference
		if err := rows.Scan(&p.Preference); err != nil {
			r.logger.Error("failed to scan preference row", "username", username, "error", err)
			return nil, fmt.Errorf("failed to scan preference row: %w", err)
		}
		prefs = append(prefs, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("error iterating preference rows", "username", username, "error", err)
		return nil, fmt.Errorf("error iterating preference rows: %w", err)
	}

	return prefs, nil
}

// DeleteByUsername clears every preference row for a user and returns the
// number of rows removed
func (r *PreferenceRepository) DeleteByUsername(ctx context.Context, username string) (int64, error) {
	query := `DELETE FROM preferences WHERE username = $1`

	tag, err := r.db.Exec(ctx, query, username)
	if err != nil {
		r.logger.Error("failed to delete preferences", "username", username, "error", err)
		return 0, fmt.Errorf("failed to delete preferences: %w", err)
	}

	r.logger.Info("preferences deleted", "username", username, "rows", tag.RowsAffected())
	return tag.RowsAffected(), nil
}

// FollowRepository implements port.FollowRepository for PostgreSQL
type FollowRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewFollowRepository creates a new PostgreSQL follow repository
func NewFollowRepository(db DatabaseIface, logger *slog.Logger) port.FollowRepository {
	return &FollowRepository{
		db:     db,
		logger: logger.With("component", "follow_repository"),
	}
}

// Create inserts a follow edge
func (r *FollowRepository) Create(ctx context.Context, follow *domain.Follow) error {
	query := `INSERT INTO follows (follower_username, followed_username) VALUES ($1, $2)`

	_, err := r.db.Exec(ctx, query, follow.FollowerUsername, follow.FollowedUsername)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyFollowing
		}
		r.logger.Error("failed to create follow",
			"follower", follow.FollowerUsername,
			"followed", follow.FollowedUsername,
			"error", err)
		return fmt.Errorf("failed to create follow: %w", err)
	}

	return nil
}

// ListFollowed returns the usernames the follower follows, oldest first
func (r *FollowRepository) ListFollowed(ctx context.Context, follower string) ([]string, error) {
	query := `SELECT followed_username FROM follows WHERE follower_username = $1`

	rows, err := r.db.Query(ctx, query, follower)
	if err != nil {
		r.logger.Error("failed to list followed users", "follower", follower, "error", err)
		return nil, fmt.Errorf("failed to list followed users: %w", err)
	}
	defer rows.Close()

	var followed []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("failed to scan follow row: %w", err)
		}
		followed = append(followed, username)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating follow rows: %w", err)
	}

	return followed, nil
}
