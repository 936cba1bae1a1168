package usecase

import (
	"context"
	"log/slog"

	"chronicle-service/app/domain"
	"chronicle-service/app/port"
)

// PreferenceUseCase implements preference business logic
type PreferenceUseCase struct {
	prefRepo port.PreferenceRepository
	logger   *slog.Logger
}

// NewPreferenceUseCase creates a new PreferenceUseCase instance
func NewPreferenceUseCase(prefRepo port.PreferenceRepository, logger *slog.Logger) *PreferenceUseCase {
	return &PreferenceUseCase{
		prefRepo: prefRepo,
		logger:   logger.With("component", "preference_usecase"),
	}
}

// AddPreference stores one (username, label) pair
func (uc *PreferenceUseCase) AddPreference(ctx context.Context, username, label string) error {
	pref, err := domain.NewPreference(username, label)
	if err != nil {
		return domain.ErrInvalidInput
	}

	return uc.prefRepo.Add(ctx, pref)
}

// CheckPreferences returns the user's preferences in storage order. Zero
// rows is an error state for this operation (the client treats a user
// without preferences as not yet onboarded).
func (uc *PreferenceUseCase) CheckPreferences(ctx context.Context, username string) ([]domain.Preference, error) {
	prefs, err := uc.prefRepo.ListByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if len(prefs) == 0 {
		return nil, domain.ErrNoPreferencesFound
	}
	return prefs, nil
}

// DeletePreferences clears the user's full preference set. The client's
// reset flow calls this and then re-adds the newly chosen labels.
func (uc *PreferenceUseCase) DeletePreferences(ctx context.Context, username string) error {
	deleted, err := uc.prefRepo.DeleteByUsername(ctx, username)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return domain.ErrNoPreferencesFound
	}

	uc.logger.Info("preferences reset", "username", username, "deleted", deleted)
	return nil
}

// FollowUseCase implements following business logic
type FollowUseCase struct {
	followRepo port.FollowRepository
	logger     *slog.Logger
}

// NewFollowUseCase creates a new FollowUseCase instance
func NewFollowUseCase(followRepo port.FollowRepository, logger *slog.Logger) *FollowUseCase {
	return &FollowUseCase{
		followRepo: followRepo,
		logger:     logger.With("component", "follow_usecase"),
	}
}

// FollowUser records a follow edge
func (uc *FollowUseCase) FollowUser(ctx context.Context, follower, followed string) error {
	follow, err := domain.NewFollow(follower, followed)
	if err != nil {
		if follower == followed && follower != "" {
			return domain.ErrSelfFollow
		}
		return domain.ErrInvalidInput
	}

	return uc.followRepo.Create(ctx, follow)
}

// GetFollowedUsers lists the usernames the given user follows. An empty
// list is a valid state, not an error.
func (uc *FollowUseCase) GetFollowedUsers(ctx context.Context, follower string) ([]string, error) {
	if follower == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.followRepo.ListFollowed(ctx, follower)
}
