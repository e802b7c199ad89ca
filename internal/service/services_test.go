package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-gate/internal/config"
	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
	"github.com/MKhiriev/go-auth-gate/models"
)

func newMemoryServices(t *testing.T) *Services {
	t.Helper()
	storages, err := store.NewStorages(context.Background(), config.Storage{DB: config.DB{Driver: config.DriverMemory}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := NewServices(storages, testAppConfig(), logger.Nop())
	require.NoError(t, err)
	return services
}

func TestNewServices_InvalidHashCost(t *testing.T) {
	storages, err := store.NewStorages(context.Background(), config.Storage{DB: config.DB{Driver: config.DriverMemory}}, logger.Nop())
	require.NoError(t, err)

	cfg := testAppConfig()
	cfg.PasswordHashCost = 99

	services, err := NewServices(storages, cfg, logger.Nop())
	assert.Nil(t, services)
	assert.Error(t, err)
}

func TestServices_RegisterLoginInfo(t *testing.T) {
	services := newMemoryServices(t)
	ctx := context.Background()
	auth := services.AuthService

	creds := models.Credentials{
		UserID:   "alice",
		Password: "correct horse",
		Profile:  models.Profile{DisplayName: "Alice", Email: "alice@example.com"},
	}

	user, err := auth.RegisterUser(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.UserID)
	assert.NotEqual(t, creds.Password, user.PasswordHash)
	assert.False(t, user.CreatedAt.IsZero())

	_, err = auth.RegisterUser(ctx, creds)
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)

	_, err = auth.Login(ctx, models.Credentials{UserID: "alice", Password: "wrong horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login(ctx, models.Credentials{UserID: "mallory", Password: "correct horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	token, err := auth.Login(ctx, models.Credentials{UserID: "alice", Password: "correct horse"})
	require.NoError(t, err)

	verified, err := services.TokenService.Verify(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", verified.Subject)

	info, err := auth.GetUserInfo(ctx, verified.Subject, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice", info.UserID)
	assert.Equal(t, creds.Profile, info.Profile)

	_, err = auth.GetUserInfo(ctx, verified.Subject, "bob")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestServices_RegisterRejectsInvalidInput(t *testing.T) {
	services := newMemoryServices(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		creds models.Credentials
	}{
		{name: "empty user id", creds: models.Credentials{Password: "pw"}},
		{name: "empty password", creds: models.Credentials{UserID: "alice"}},
		{name: "user id with slash", creds: models.Credentials{UserID: "a/b/c", Password: "pw"}},
		{name: "password over 72 bytes", creds: models.Credentials{UserID: "alice", Password: strings.Repeat("p", 73)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := services.AuthService.RegisterUser(ctx, tt.creds)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestServices_ConcurrentRegisterSameUser(t *testing.T) {
	services := newMemoryServices(t)
	ctx := context.Background()

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := services.AuthService.RegisterUser(ctx, models.Credentials{UserID: "alice", Password: "pw"})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, store.ErrUserAlreadyExists):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, conflicts)
}
