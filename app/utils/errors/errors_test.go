package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeUserNotFound, "User not found"),
			expected: "USER_NOT_FOUND: User not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeDatabaseError, "database error", errors.New("connection failed")),
			expected: "DATABASE_ERROR: database error (caused by: connection failed)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("original error")
	err := Wrap(ErrCodeInternalError, "wrapped error", cause)

	unwrapped := errors.Unwrap(err)
	assert.Equal(t, cause, unwrapped)
}

func TestAppError_WithContext(t *testing.T) {
	err := New(ErrCodeUserNotFound, "User not found")
	err.WithContext("username", "alice")

	assert.Equal(t, "alice", err.Context["username"])
}

func TestHTTPStatusCodeMapping(t *testing.T) {
	tests := []struct {
		name     string
		code     ErrorCode
		expected int
	}{
		{"invalid credentials maps to 401", ErrCodeInvalidCredentials, http.StatusUnauthorized},
		{"deactivated account maps to 403", ErrCodeAccountDeactivated, http.StatusForbidden},
		{"user not found maps to 404", ErrCodeUserNotFound, http.StatusNotFound},
		{"user exists maps to 409", ErrCodeUserExists, http.StatusConflict},
		{"email exists maps to 409", ErrCodeEmailExists, http.StatusConflict},
		{"conflict maps to 409", ErrCodeConflict, http.StatusConflict},
		{"missing field maps to 400", ErrCodeMissingField, http.StatusBadRequest},
		{"rate limit maps to 429", ErrCodeRateLimitExceeded, http.StatusTooManyRequests},
		{"database error maps to 500", ErrCodeDatabaseError, http.StatusInternalServerError},
		{"unknown code maps to 500", ErrorCode("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, New(tt.code, "msg").StatusCode)
		})
	}
}

func TestAsAppError(t *testing.T) {
	appErr := ErrUserExists
	wrapped := Wrap(ErrCodeDatabaseError, "db", appErr)

	got, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrCodeDatabaseError, got.Code)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestGetHTTPStatusCode_PlainError(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatusCode(errors.New("boom")))
}

func TestDatabaseErrorHidesCause(t *testing.T) {
	cause := errors.New("pq: duplicate key value violates unique constraint")
	err := NewDatabaseError(cause)

	// The caller-facing message must stay generic; driver text is log-only.
	assert.Equal(t, "Internal server error", err.Message)
	assert.Equal(t, cause, err.Cause)
}
