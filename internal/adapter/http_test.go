// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/models"
)

// newTestAdapter creates an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientConfig{ServerAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func TestNewHTTPServerAdapter_Address(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{name: "full url", address: "http://localhost:8080/"},
		{name: "host and port", address: "localhost:8080"},
		{name: "empty", address: "  ", wantErr: true},
		{name: "scheme only", address: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewHTTPServerAdapter(config.ClientConfig{ServerAddress: tt.address}, logger.Nop())
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, a)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/register", r.URL.Path)

		var creds models.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "alice", creds.UserID)
		assert.Equal(t, "pw1", creds.Password)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"user_id":"alice","profile":{"display_name":"Alice"}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	info, err := a.Register(context.Background(), models.Credentials{UserID: "alice", Password: "pw1"})

	require.NoError(t, err)
	assert.Equal(t, "alice", info.UserID)
	assert.Equal(t, "Alice", info.Profile.DisplayName)
	assert.Empty(t, a.Token())
}

func TestRegister_StatusErrors(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{status: http.StatusConflict, wantErr: ErrConflict},
		{status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{status: http.StatusBadGateway, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.Credentials{UserID: "alice"})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestRegister_UndocumentedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Register(context.Background(), models.Credentials{UserID: "alice"})
	require.Error(t, err)
	assert.Equal(t, "http 418: I'm a teapot", err.Error())
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/login", r.URL.Path)
		w.Header().Set("Authorization", "Bearer h.p.s")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"h.p.s","expires_at":"2026-03-02T12:00:00Z"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	resp, err := a.Login(context.Background(), models.Credentials{UserID: "alice", Password: "pw1"})

	require.NoError(t, err)
	assert.Equal(t, "h.p.s", resp.Token)
	assert.Equal(t, "h.p.s", a.Token())
	assert.Equal(t, 2026, resp.ExpiresAt.Year())
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid login/password", http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{UserID: "alice", Password: "bad"})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestLogin_NoToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), models.Credentials{UserID: "alice"})
	assert.Error(t, err)
}

// ── UserInfo ────────────────────────────────────────────────────────────────

func TestUserInfo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/alice/info", r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer h.p.s" {
			http.Error(w, "unauthenticated", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user_id":"alice","profile":{"email":"alice@example.com"}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	_, err := a.UserInfo(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrNoToken)

	a.SetToken("h.p.s")
	info, err := a.UserInfo(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", info.Profile.Email)
}

func TestUserInfo_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("h.p.s")

	_, err := a.UserInfo(context.Background(), "bob")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/healthz" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(t, srv.URL).Health(context.Background()))
}

func TestSetToken_Trims(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:8080")
	a.SetToken("  h.p.s \n")
	assert.Equal(t, "h.p.s", a.Token())
}
