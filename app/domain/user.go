package domain

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User represents a registered account. Identity is the unique username;
// the uuid is a storage-level surrogate key.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Exclude from JSON
	Email        string    `json:"email,omitempty"`
	Deactivated  bool      `json:"deactivated"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser creates a new user with a freshly hashed password
func NewUser(username, password, email string) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return nil, fmt.Errorf("invalid email format: %w", err)
		}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	return &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		Deactivated:  false,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// HashPassword hashes a plaintext password with bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext candidate against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// CanLogin reports whether the account accepts logins
func (u *User) CanLogin() bool {
	return !u.Deactivated
}
