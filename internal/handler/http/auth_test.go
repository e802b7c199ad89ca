// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/mock"
	"github.com/MKhiriev/go-auth-gate/internal/service"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/models"
)

var createdAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newMockedRouter(t *testing.T) (http.Handler, *mock.MockAuthService, *mock.MockTokenService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	tokens := mock.NewMockTokenService(ctrl)
	return newTestHandler(auth, tokens, config.Server{}).Init(), auth, tokens
}

func serve(router http.Handler, method, target, body string, header map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister(t *testing.T) {
	const body = `{"user_id":"alice","password":"pw1","profile":{"display_name":"Alice"}}`

	t.Run("created", func(t *testing.T) {
		router, auth, _ := newMockedRouter(t)
		auth.EXPECT().RegisterUser(gomock.Any(), models.Credentials{
			UserID:   "alice",
			Password: "pw1",
			Profile:  models.Profile{DisplayName: "Alice"},
		}).Return(models.User{
			UserID:       "alice",
			PasswordHash: "$2a$10$secret",
			Profile:      models.Profile{DisplayName: "Alice"},
			CreatedAt:    createdAt,
		}, nil)

		rr := serve(router, http.MethodPost, "/register", body, nil)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
		assert.NotContains(t, rr.Body.String(), "secret")
		assert.Empty(t, rr.Header().Get("Authorization"), "register does not issue a token")

		var info models.UserInfo
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
		assert.Equal(t, "alice", info.UserID)
		assert.Equal(t, "Alice", info.Profile.DisplayName)
	})

	t.Run("invalid json", func(t *testing.T) {
		router, _, _ := newMockedRouter(t)

		rr := serve(router, http.MethodPost, "/register", `{"user_id":`, nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid JSON was passed")
	})

	t.Run("validation error", func(t *testing.T) {
		router, auth, _ := newMockedRouter(t)
		auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
			Return(models.User{}, fmt.Errorf("%w: user_id failed on \"min\"", service.ErrInvalidDataProvided))

		rr := serve(router, http.MethodPost, "/register", body, nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid data provided")
	})

	t.Run("duplicate", func(t *testing.T) {
		router, auth, _ := newMockedRouter(t)
		auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
			Return(models.User{}, fmt.Errorf("user creation ended with error: %w", store.ErrUserAlreadyExists))

		rr := serve(router, http.MethodPost, "/api/user/register", body, nil)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("internal error is generic", func(t *testing.T) {
		router, auth, _ := newMockedRouter(t)
		auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
			Return(models.User{}, fmt.Errorf("%w: connection refused", store.ErrExecutingQuery))

		rr := serve(router, http.MethodPost, "/register", body, nil)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "internal server error", strings.TrimSpace(rr.Body.String()))
	})
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin(t *testing.T) {
	const body = `{"user_id":"alice","password":"pw1"}`

	t.Run("ok", func(t *testing.T) {
		router, auth, _ := newMockedRouter(t)
		expiresAt := createdAt.Add(24 * time.Hour)
		auth.EXPECT().Login(gomock.Any(), models.Credentials{UserID: "alice", Password: "pw1"}).
			Return(models.Token{Subject: "alice", ExpiresAt: expiresAt, SignedString: "h.p.s"}, nil)

		rr := serve(router, http.MethodPost, "/login", body, nil)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Bearer h.p.s", rr.Header().Get("Authorization"))

		var resp models.TokenResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "h.p.s", resp.Token)
		assert.True(t, resp.ExpiresAt.Equal(expiresAt))
	})

	t.Run("invalid credentials", func(t *testing.T) {
		router, auth, _ := newMockedRouter(t)
		auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrInvalidCredentials)

		rr := serve(router, http.MethodPost, "/api/user/login", body, nil)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "invalid login/password", strings.TrimSpace(rr.Body.String()))
		assert.Empty(t, rr.Header().Get("Authorization"))
	})

	t.Run("invalid json", func(t *testing.T) {
		router, _, _ := newMockedRouter(t)

		rr := serve(router, http.MethodPost, "/login", "not json", nil)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

// ─────────────────────────────────────────────
// info
// ─────────────────────────────────────────────

func TestInfo(t *testing.T) {
	bearer := map[string]string{"Authorization": "Bearer h.p.s"}

	t.Run("own profile", func(t *testing.T) {
		router, auth, tokens := newMockedRouter(t)
		tokens.EXPECT().Verify(gomock.Any(), "h.p.s").Return(models.Token{Subject: "alice"}, nil)
		auth.EXPECT().GetUserInfo(gomock.Any(), "alice", "alice").
			Return(models.UserInfo{UserID: "alice", CreatedAt: createdAt}, nil)

		rr := serve(router, http.MethodGet, "/alice/info", "", bearer)

		require.Equal(t, http.StatusOK, rr.Code)
		var info models.UserInfo
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
		assert.Equal(t, "alice", info.UserID)
	})

	t.Run("api alias", func(t *testing.T) {
		router, auth, tokens := newMockedRouter(t)
		tokens.EXPECT().Verify(gomock.Any(), "h.p.s").Return(models.Token{Subject: "alice"}, nil)
		auth.EXPECT().GetUserInfo(gomock.Any(), "alice", "alice").Return(models.UserInfo{UserID: "alice"}, nil)

		rr := serve(router, http.MethodGet, "/api/user/alice/info", "", bearer)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("another user", func(t *testing.T) {
		router, auth, tokens := newMockedRouter(t)
		tokens.EXPECT().Verify(gomock.Any(), "h.p.s").Return(models.Token{Subject: "alice"}, nil)
		auth.EXPECT().GetUserInfo(gomock.Any(), "alice", "bob").Return(models.UserInfo{}, service.ErrForbidden)

		rr := serve(router, http.MethodGet, "/bob/info", "", bearer)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("account gone", func(t *testing.T) {
		router, auth, tokens := newMockedRouter(t)
		tokens.EXPECT().Verify(gomock.Any(), "h.p.s").Return(models.Token{Subject: "alice"}, nil)
		auth.EXPECT().GetUserInfo(gomock.Any(), "alice", "alice").
			Return(models.UserInfo{}, fmt.Errorf("user search by id failed: %w", store.ErrNoUserWasFound))

		rr := serve(router, http.MethodGet, "/alice/info", "", bearer)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("no token never reaches the service", func(t *testing.T) {
		router, _, _ := newMockedRouter(t)

		rr := serve(router, http.MethodGet, "/alice/info", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("subject missing from context", func(t *testing.T) {
		h := newTestHandler(nil, nil, config.Server{})
		rr := httptest.NewRecorder()

		h.info(rr, httptest.NewRequest(http.MethodGet, "/alice/info", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
