package service

import (
	"context"
	"testing"

	"portfolio/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupHashesPassword(t *testing.T) {
	store := repository.NewMemStore()
	svc := NewAuthService(store, "test-secret", zerolog.Nop())
	ctx := context.Background()

	user, err := svc.Signup(ctx, "admin", "correct horse battery")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)

	stored, err := store.GetUserByUsername(ctx, "admin")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "correct horse battery", stored.Password)
}

func TestSignupDuplicateUsername(t *testing.T) {
	svc := NewAuthService(repository.NewMemStore(), "test-secret", zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Signup(ctx, "admin", "correct horse battery")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "admin", "another password")
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestLoginRoundTrip(t *testing.T) {
	svc := NewAuthService(repository.NewMemStore(), "test-secret", zerolog.Nop())
	ctx := context.Background()

	user, err := svc.Signup(ctx, "admin", "correct horse battery")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "admin", "correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, user.ID, claims.Subject)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := NewAuthService(repository.NewMemStore(), "test-secret", zerolog.Nop())
	ctx := context.Background()

	_, err := svc.Signup(ctx, "admin", "correct horse battery")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "admin", "wrong password!")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody", "correct horse battery")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
