package usecase

import (
	"context"
	"log/slog"

	"chronicle-service/app/domain"
	"chronicle-service/app/port"
)

// AuthUseCase implements account business logic
type AuthUseCase struct {
	userRepo port.UserRepository
	logger   *slog.Logger
}

// NewAuthUseCase creates a new AuthUseCase instance
func NewAuthUseCase(userRepo port.UserRepository, logger *slog.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo: userRepo,
		logger:   logger.With("component", "auth_usecase"),
	}
}

// CheckLogin verifies the credentials and account state for a login attempt
func (uc *AuthUseCase) CheckLogin(ctx context.Context, username, password string) error {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			// Same error as a bad password so callers cannot probe usernames
			return domain.ErrInvalidCredentials
		}
		return err
	}

	if !user.CheckPassword(password) {
		return domain.ErrInvalidCredentials
	}

	if !user.CanLogin() {
		uc.logger.Info("login rejected for deactivated account", "username", username)
		return domain.ErrAccountDeactivated
	}

	uc.logger.Info("login successful", "username", username)
	return nil
}

// SignUp registers a new account. Username and email are both unique.
func (uc *AuthUseCase) SignUp(ctx context.Context, username, password, email string) (*domain.User, error) {
	exists, err := uc.userRepo.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserAlreadyExists
	}

	if email != "" {
		exists, err = uc.userRepo.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, domain.ErrEmailAlreadyExists
		}
	}

	user, err := domain.NewUser(username, password, email)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		// The unique index can still trip under concurrent sign-ups
		return nil, err
	}

	uc.logger.Info("user registered", "username", username)
	return user, nil
}

// DeactivateUser flags an account as deactivated
func (uc *AuthUseCase) DeactivateUser(ctx context.Context, username string) error {
	return uc.userRepo.SetDeactivated(ctx, username, true)
}

// ReactivateUser clears the deactivated flag
func (uc *AuthUseCase) ReactivateUser(ctx context.Context, username string) error {
	return uc.userRepo.SetDeactivated(ctx, username, false)
}

// DeleteUser removes the account row entirely
func (uc *AuthUseCase) DeleteUser(ctx context.Context, username string) error {
	return uc.userRepo.Delete(ctx, username)
}
