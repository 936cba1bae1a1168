package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"chronicle-service/app/domain"
	"chronicle-service/app/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) StatusResponse {
	t.Helper()
	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestAuthHandler_CheckLogin(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		usecaseErr  error
		wantCode    int
		wantStatus  string
		wantMessage string
	}{
		{
			name:        "successful login",
			body:        `{"username":"alice","password":"s3cret-pass"}`,
			usecaseErr:  nil,
			wantCode:    http.StatusOK,
			wantStatus:  "Success",
			wantMessage: "Login successful",
		},
		{
			name:        "bad credentials",
			body:        `{"username":"alice","password":"wrong"}`,
			usecaseErr:  domain.ErrInvalidCredentials,
			wantCode:    http.StatusUnauthorized,
			wantStatus:  "Error",
			wantMessage: "Invalid username or password",
		},
		{
			name:        "deactivated account",
			body:        `{"username":"bob","password":"s3cret-pass"}`,
			usecaseErr:  domain.ErrAccountDeactivated,
			wantCode:    http.StatusForbidden,
			wantStatus:  "Error",
			wantMessage: "Account is deactivated",
		},
		{
			name:        "internal failure stays generic",
			body:        `{"username":"alice","password":"s3cret-pass"}`,
			usecaseErr:  assert.AnError,
			wantCode:    http.StatusInternalServerError,
			wantStatus:  "Error",
			wantMessage: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockAuthUsecase(ctrl)
			uc.EXPECT().CheckLogin(gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.usecaseErr)

			h := NewAuthHandler(uc, testLogger())
			c, rec := postJSON(echo.New(), "/check-login", tt.body)
			require.NoError(t, h.CheckLogin(c))

			assert.Equal(t, tt.wantCode, rec.Code)
			resp := decodeStatus(t, rec)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestAuthHandler_SignUp(t *testing.T) {
	t.Run("registration succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockAuthUsecase(ctrl)
		uc.EXPECT().SignUp(gomock.Any(), "carol", "hunter2-long", "carol@example.com").
			Return(&domain.User{Username: "carol"}, nil)

		h := NewAuthHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/sign-up", `{"username":"carol","password":"hunter2-long","email":"carol@example.com"}`)
		require.NoError(t, h.SignUp(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "User registered successfully", decodeStatus(t, rec).Message)
	})

	t.Run("duplicate username", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockAuthUsecase(ctrl)
		uc.EXPECT().SignUp(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrUserAlreadyExists)

		h := NewAuthHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/sign-up", `{"username":"carol","password":"hunter2-long"}`)
		require.NoError(t, h.SignUp(c))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Username is already registered", decodeStatus(t, rec).Message)
	})

	// The deployed client registers short free-form credentials; no shape
	// rules apply beyond presence.
	t.Run("minimal credentials are accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockAuthUsecase(ctrl)
		uc.EXPECT().SignUp(gomock.Any(), "alice", "p1", "").
			Return(&domain.User{Username: "alice"}, nil)

		h := NewAuthHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/sign-up", `{"username":"alice","password":"p1"}`)
		require.NoError(t, h.SignUp(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeStatus(t, rec)
		assert.Equal(t, "Success", resp.Status)
		assert.Equal(t, "User registered successfully", resp.Message)
	})

	t.Run("missing password is rejected before the usecase runs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockAuthUsecase(ctrl)

		h := NewAuthHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/sign-up", `{"username":"carol"}`)
		require.NoError(t, h.SignUp(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	// bcrypt refuses inputs over 72 bytes, so the handler rejects them
	// instead of surfacing a hashing failure as a 500.
	t.Run("password over the bcrypt ceiling is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockAuthUsecase(ctrl)

		long := strings.Repeat("x", 73)
		h := NewAuthHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/sign-up", `{"username":"carol","password":"`+long+`"}`)
		require.NoError(t, h.SignUp(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockAuthUsecase(ctrl)
		uc.EXPECT().SignUp(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, domain.ErrEmailAlreadyExists)

		h := NewAuthHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/sign-up", `{"username":"carol","password":"hunter2-long","email":"taken@example.com"}`)
		require.NoError(t, h.SignUp(c))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Email is already registered", decodeStatus(t, rec).Message)
	})
}

func TestAuthHandler_DeactivateDeleteMessages(t *testing.T) {
	t.Run("deactivate names the user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockAuthUsecase(ctrl)
		uc.EXPECT().DeactivateUser(gomock.Any(), "alice").Return(nil)

		h := NewAuthHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/deactivate-user", `{"username":"alice"}`)
		require.NoError(t, h.DeactivateUser(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "User alice has been deactivated", decodeStatus(t, rec).Message)
	})

	t.Run("deactivate unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockAuthUsecase(ctrl)
		uc.EXPECT().DeactivateUser(gomock.Any(), "ghost").Return(domain.ErrUserNotFound)

		h := NewAuthHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/deactivate-user", `{"username":"ghost"}`)
		require.NoError(t, h.DeactivateUser(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User not found", decodeStatus(t, rec).Message)
	})

	t.Run("delete names the user with trailing period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockAuthUsecase(ctrl)
		uc.EXPECT().DeleteUser(gomock.Any(), "alice").Return(nil)

		h := NewAuthHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/delete-user", `{"username":"alice"}`)
		require.NoError(t, h.DeleteUser(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "User alice has been deleted.", decodeStatus(t, rec).Message)
	})

	t.Run("delete unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockAuthUsecase(ctrl)
		uc.EXPECT().DeleteUser(gomock.Any(), "ghost").Return(domain.ErrUserNotFound)

		h := NewAuthHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/delete-user", `{"username":"ghost"}`)
		require.NoError(t, h.DeleteUser(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "User ghost not found.", decodeStatus(t, rec).Message)
	})

	t.Run("reactivate clears the flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockAuthUsecase(ctrl)
		uc.EXPECT().ReactivateUser(gomock.Any(), "alice").Return(nil)

		h := NewAuthHandler(uc, testLogger())
		c, rec := postJSON(echo.New(), "/reactivate-user", `{"username":"alice"}`)
		require.NoError(t, h.ReactivateUser(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "User alice has been reactivated", decodeStatus(t, rec).Message)
	})
}
