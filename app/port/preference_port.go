package port

//go:generate mockgen -source=preference_port.go -destination=../mocks/mock_preference_port.go -package=mocks

import (
	"context"

	"chronicle-service/app/domain"
)

// PreferenceUsecase defines preference business logic
type PreferenceUsecase interface {
	AddPreference(ctx context.Context, username, label string) error
	CheckPreferences(ctx context.Context, username string) ([]domain.Preference, error)
	DeletePreferences(ctx context.Context, username string) error
}

// PreferenceRepository defines preference data access
type PreferenceRepository interface {
	Add(ctx context.Context, pref *domain.Preference) error
	// ListByUsername returns preferences in storage order.
	ListByUsername(ctx context.Context, username string) ([]domain.Preference, error)
	// DeleteByUsername returns the number of rows removed.
	DeleteByUsername(ctx context.Context, username string) (int64, error)
}

// FollowUsecase defines following business logic
type FollowUsecase interface {
	FollowUser(ctx context.Context, follower, followed string) error
	GetFollowedUsers(ctx context.Context, follower string) ([]string, error)
}

// FollowRepository defines follow-edge data access
type FollowRepository interface {
	Create(ctx context.Context, follow *domain.Follow) error
	ListFollowed(ctx context.Context, follower string) ([]string, error)
}
