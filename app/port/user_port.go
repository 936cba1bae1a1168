package port

//go:generate mockgen -source=user_port.go -destination=../mocks/mock_user_port.go -package=mocks

import (
	"context"

	"chronicle-service/app/domain"
)

// AuthUsecase defines account business logic
type AuthUsecase interface {
	CheckLogin(ctx context.Context, username, password string) error
	SignUp(ctx context.Context, username, password, email string) (*domain.User, error)
	DeactivateUser(ctx context.Context, username string) error
	ReactivateUser(ctx context.Context, username string) error
	DeleteUser(ctx context.Context, username string) error
}

// UserRepository defines user data access
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SetDeactivated(ctx context.Context, username string, deactivated bool) error
	Delete(ctx context.Context, username string) error
}
