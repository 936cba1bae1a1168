package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chronicle-service/app/domain"
	"chronicle-service/app/utils/logger"
)

func createTestUserRepository(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("error")
	require.NoError(t, err)

	repo := NewUserRepository(mockDB, testLogger).(*UserRepository)
	return repo, mockDB
}

func testUser(t *testing.T) *domain.User {
	t.Helper()

	return &domain.User{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "$2a$10$fakefakefakefakefakefak",
		Email:        "alice@example.com",
		Deactivated:  false,
		CreatedAt:    time.Now().UTC(),
	}
}

func TestUserRepository_Create(t *testing.T) {
	tests := []struct {
		name    string
		setupDB func(pgxmock.PgxPoolIface, *domain.User)
		wantErr error
	}{
		{
			name: "successful insert",
			setupDB: func(mockDB pgxmock.PgxPoolIface, user *domain.User) {
				mockDB.ExpectExec("INSERT INTO users").
					WithArgs(user.ID, user.Username, user.PasswordHash, user.Email, user.Deactivated, user.CreatedAt).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "duplicate username maps to ErrUserAlreadyExists",
			setupDB: func(mockDB pgxmock.PgxPoolIface, user *domain.User) {
				mockDB.ExpectExec("INSERT INTO users").
					WithArgs(user.ID, user.Username, user.PasswordHash, user.Email, user.Deactivated, user.CreatedAt).
					WillReturnError(&pgconn.PgError{Code: uniqueViolation})
			},
			wantErr: domain.ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestUserRepository(t)
			defer mockDB.Close()

			user := testUser(t)
			tt.setupDB(mockDB, user)

			err := repo.Create(context.Background(), user)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByUsername(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	user := testUser(t)
	rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "email", "deactivated", "created_at"}).
		AddRow(user.ID, user.Username, user.PasswordHash, user.Email, user.Deactivated, user.CreatedAt)

	mockDB.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, user.Username, got.Username)
	assert.Equal(t, user.Email, got.Email)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestUserRepository_GetByUsername_NotFound(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_ExistsByUsername(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("SELECT EXISTS").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.ExistsByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestUserRepository_SetDeactivated(t *testing.T) {
	tests := []struct {
		name         string
		rowsAffected int64
		wantErr      error
	}{
		{name: "user updated", rowsAffected: 1},
		{name: "unknown user maps to ErrUserNotFound", rowsAffected: 0, wantErr: domain.ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestUserRepository(t)
			defer mockDB.Close()

			mockDB.ExpectExec("UPDATE users").
				WithArgs("alice", true).
				WillReturnResult(pgxmock.NewResult("UPDATE", tt.rowsAffected))

			err := repo.SetDeactivated(context.Background(), "alice", true)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUserRepository_Delete(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	mockDB.ExpectExec("DELETE FROM users").
		WithArgs("alice").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	assert.NoError(t, repo.Delete(context.Background(), "alice"))
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestUserRepository_Delete_NotFound(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	mockDB.ExpectExec("DELETE FROM users").
		WithArgs("ghost").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_QueryFailureIsWrapped(t *testing.T) {
	repo, mockDB := createTestUserRepository(t)
	defer mockDB.Close()

	mockDB.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("alice").
		WillReturnError(errors.New("connection refused"))

	_, err := repo.GetByUsername(context.Background(), "alice")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
}
