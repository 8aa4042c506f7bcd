package usecase

import (
	"context"
	"testing"

	"movie-review/internal/dto/request"
	"movie-review/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthServiceRegister(t *testing.T) {
	repo := newTestRepo(t)
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	svc := NewAuthService(repo, config, zap.NewNop())
	ctx := context.Background()

	resp, err := svc.Register(ctx, &request.RegisterRequest{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice", resp.User.Username)
	// Emails normalize to lower case on the way in.
	assert.Equal(t, "alice@example.com", resp.User.Email)
	assert.Equal(t, "user", resp.User.Role)
	assert.NotEmpty(t, resp.User.ProfilePicture)

	// The token is an opaque uuid, usable immediately.
	_, err = uuid.Parse(resp.Token)
	require.NoError(t, err)

	session, err := repo.Session.FindValidSession(ctx, resp.Token)
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, resp.User.ID, session.UserID)
}

func TestAuthServiceRegisterConflicts(t *testing.T) {
	repo := newTestRepo(t)
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	svc := NewAuthService(repo, config, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	t.Run("email taken, case-insensitive", func(t *testing.T) {
		_, err := svc.Register(ctx, &request.RegisterRequest{
			Username: "alice2", Email: "ALICE@example.com", Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("username taken", func(t *testing.T) {
		_, err := svc.Register(ctx, &request.RegisterRequest{
			Username: "alice", Email: "other@example.com", Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	repo := newTestRepo(t)
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	svc := NewAuthService(repo, config, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Register(ctx, &request.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, &request.LoginRequest{
			Email: "alice@example.com", Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &request.LoginRequest{
			Email: "alice@example.com", Password: "wrong",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email reports the same failure as a wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, &request.LoginRequest{
			Email: "nobody@example.com", Password: "secret123",
		})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthServiceLogout(t *testing.T) {
	repo := newTestRepo(t)
	config := &utils.Config{Session: utils.SessionConfig{ExpiryHours: 24}}
	svc := NewAuthService(repo, config, zap.NewNop())
	ctx := context.Background()

	resp, err := svc.Register(ctx, &request.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "secret123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.Token))

	session, err := repo.Session.FindValidSession(ctx, resp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)

	t.Run("malformed token", func(t *testing.T) {
		assert.ErrorIs(t, svc.Logout(ctx, "not-a-uuid"), ErrInvalidToken)
	})
}
