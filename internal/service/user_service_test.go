package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pramanandasarkar02/toolsai/internal/api/config"
	"github.com/pramanandasarkar02/toolsai/internal/api/dto"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/consts"
	"github.com/pramanandasarkar02/toolsai/internal/pkg/security"
)

func TestMain(m *testing.M) {
	config.Cfg = &config.Config{
		JWT: config.JWTConfig{
			Secret:          "test-secret",
			ExpirationHours: 72,
		},
	}
	m.Run()
}

func newUserFixture() (*fakeUserRepo, *fakeApiKeyRepo, UserService) {
	userRepo := newFakeUserRepo()
	apiKeyRepo := newFakeApiKeyRepo()
	return userRepo, apiKeyRepo, NewUserService(userRepo, apiKeyRepo)
}

func TestRegisterNormalizesAndConflicts(t *testing.T) {
	ctx := context.Background()
	userRepo, _, svc := newUserFixture()

	got, err := svc.Register(ctx, &dto.RegisterDTO{
		Username: "  alice  ",
		Email:    "Alice@Example.COM",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "alice@example.com", got.Email)
	assert.Equal(t, consts.RoleUser, got.Role)
	assert.True(t, got.IsActive)
	assert.False(t, got.IsVerified)

	// Stored password must be hashed.
	stored, _ := userRepo.GetUserByUsername(ctx, "alice")
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
	require.NoError(t, security.CheckPasswordHash("secret123", stored.Password))

	_, err = svc.Register(ctx, &dto.RegisterDTO{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrUsernameExists)

	_, err = svc.Register(ctx, &dto.RegisterDTO{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestLoginPaths(t *testing.T) {
	ctx := context.Background()
	userRepo, _, svc := newUserFixture()

	_, err := svc.Register(ctx, &dto.RegisterDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	result, err := svc.Login(ctx, &dto.CredentialDTO{Email: "ALICE@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "alice", result.User.Username)
	assert.NotNil(t, result.User.LastLoginAt)

	_, err = svc.Login(ctx, &dto.CredentialDTO{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.CredentialDTO{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	stored, _ := userRepo.GetUserByUsername(ctx, "alice")
	_, err = userRepo.UpdateIsActive(ctx, stored.ID, false)
	require.NoError(t, err)

	_, err = svc.Login(ctx, &dto.CredentialDTO{Email: "alice@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrAccountDisabled)
}

func TestVerifyEmail(t *testing.T) {
	ctx := context.Background()
	userRepo, _, svc := newUserFixture()

	_, err := svc.Register(ctx, &dto.RegisterDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	stored, _ := userRepo.GetUserByUsername(ctx, "alice")
	require.NotNil(t, stored.VerificationToken)
	token := *stored.VerificationToken

	require.NoError(t, svc.VerifyEmail(ctx, token))

	stored, _ = userRepo.GetUserByUsername(ctx, "alice")
	assert.True(t, stored.IsVerified)
	assert.Nil(t, stored.VerificationToken)

	// The token is single use.
	err = svc.VerifyEmail(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidVerifyToken)

	err = svc.VerifyEmail(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidVerifyToken)
}

func TestApiKeyLifecycle(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newUserFixture()

	user, err := svc.Register(ctx, &dto.RegisterDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	created, err := svc.CreateApiKey(ctx, user.ID, &dto.ApiKeyCreateDTO{KeyName: "ci"})
	require.NoError(t, err)
	assert.Len(t, created.KeyValue, 64)

	// The secret is only disclosed at creation time.
	keys, err := svc.ListApiKeys(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, keys, 1)
	assert.Empty(t, keys[0].KeyValue)

	require.NoError(t, svc.RevokeApiKey(ctx, user.ID, created.ID))

	err = svc.RevokeApiKey(ctx, user.ID, created.ID)
	assert.ErrorIs(t, err, ErrApiKeyNotFound)
}

func TestUpdateUserProfile(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newUserFixture()

	user, err := svc.Register(ctx, &dto.RegisterDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	fullName := "Alice Doe"
	got, err := svc.UpdateUser(ctx, user.ID, &dto.UserUpdateDTO{FullName: &fullName})
	require.NoError(t, err)
	assert.Equal(t, "Alice Doe", got.FullName)
}

func TestGetUserByUsername(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newUserFixture()

	_, err := svc.Register(ctx, &dto.RegisterDTO{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	got, err := svc.GetUserByUsername(ctx, "  alice ")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	_, err = svc.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestListUsersPaged(t *testing.T) {
	ctx := context.Background()
	_, _, svc := newUserFixture()

	for _, name := range []string{"alice", "bob", "carol"} {
		_, err := svc.Register(ctx, &dto.RegisterDTO{
			Username: name,
			Email:    name + "@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
	}

	page, err := svc.ListUsers(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.TotalItems)
	assert.Len(t, page.Content.([]*dto.UserDTO), 2)
}
