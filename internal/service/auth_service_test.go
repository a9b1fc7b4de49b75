package service

import (
	"context"
	"testing"
	"time"

	"github.com/SahniNitish/HCI-Project/internal/dto"
	"github.com/SahniNitish/HCI-Project/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newAuthService(users *fakeUserStore) (*AuthService, *auth.JWTManager) {
	jwtManager := auth.NewJWTManager("test-secret", 168*time.Hour)
	return NewAuthService(users, jwtManager, zap.NewNop()), jwtManager
}

func TestRegisterAndLogin(t *testing.T) {
	svc, jwtManager := newAuthService(&fakeUserStore{})
	ctx := context.Background()

	reg, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "s3cret",
		Name:     "Alice",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)
	assert.Equal(t, "alice@example.com", reg.User.Email)

	// The login token validates back to the registered user id
	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "s3cret"})
	require.NoError(t, err)

	claims, err := jwtManager.ValidateToken(login.Token)
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(&fakeUserStore{})
	ctx := context.Background()

	req := &dto.RegisterRequest{Email: "bob@example.com", Password: "pw", Name: "Bob"}
	_, err := svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginFailures(t *testing.T) {
	svc, _ := newAuthService(&fakeUserStore{})
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "carol@example.com", Password: "right", Name: "Carol"})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "carol@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "right"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestProfile(t *testing.T) {
	svc, _ := newAuthService(&fakeUserStore{})
	ctx := context.Background()

	reg, err := svc.Register(ctx, &dto.RegisterRequest{Email: "dan@example.com", Password: "pw", Name: "Dan"})
	require.NoError(t, err)

	profile, err := svc.Profile(ctx, reg.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dan", profile.Name)

	_, err = svc.Profile(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Profile(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
