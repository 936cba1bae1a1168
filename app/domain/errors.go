package domain

import "errors"

// Sentinel errors surfaced by repositories and usecases. Handlers translate
// these to wire statuses; some map to soft 200 statuses rather than HTTP
// error codes (see rest/handlers).
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrAccountDeactivated = errors.New("account deactivated")

	// Preference errors
	ErrPreferenceExists   = errors.New("preference already exists")
	ErrNoPreferencesFound = errors.New("no preferences found")

	// Follow errors
	ErrAlreadyFollowing = errors.New("already following")
	ErrSelfFollow       = errors.New("cannot follow yourself")

	// Content errors
	ErrArticleNotFound = errors.New("article not found")
	ErrTweetNotFound   = errors.New("tweet not found")

	// Selection errors
	ErrSelectionNotSet = errors.New("selection not set")

	// Validation errors
	ErrInvalidInput = errors.New("invalid input")

	// General errors
	ErrInternal = errors.New("internal error")
)
