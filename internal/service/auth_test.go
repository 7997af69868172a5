package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopdeck/storefront/internal/tokens"
)

var testJWTSecret = []byte("test-jwt-secret")

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	return &AuthService{Repo: newTestRepo(t), JWTSecret: testJWTSecret}
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{name: "empty name", userName: "", email: "a@test.com", password: "pw"},
		{name: "empty email", userName: "a", email: "", password: "pw"},
		{name: "empty password", userName: "a", email: "a@test.com", password: ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.userName, tt.email, tt.password)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestAuthService_Register_RoleFromEmail(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t)
	ctx := context.Background()

	tests := []struct {
		email string
		role  string
	}{
		{email: "alice@test.com", role: "user"},
		{email: "boss_admin@test.com", role: "admin"},
		{email: "admin@shop.io", role: "admin"},
		{email: "badminton@test.com", role: "admin"}, // substring rule, not a word match
	}

	for _, tt := range tests {
		res, err := svc.Register(ctx, "someone", tt.email, "pw1")
		require.NoError(t, err)
		assert.Equal(t, tt.role, res.User.Role, "email %q", tt.email)
		require.NotEmpty(t, res.Token)

		claims, err := tokens.AccessClaimsFromToken(res.Token, testJWTSecret)
		require.NoError(t, err)
		assert.Equal(t, tt.role, claims.Role)
		assert.Equal(t, tt.email, claims.Email)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@test.com", "pw1")
	require.NoError(t, err)

	// A different name and password must not get around the conflict.
	_, err = svc.Register(ctx, "other alice", "alice@test.com", "pw2")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAuthService_Register_NeverStoresPlaintext(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, "alice", "alice@test.com", "pw1")
	require.NoError(t, err)

	stored, err := svc.Repo.UserByEmail(ctx, "alice@test.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "pw1", stored.PasswordHash)
	assert.Equal(t, res.User.ID, stored.ID)
}

func TestAuthService_Login_InvalidCredentialsIndistinguishable(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "alice@test.com", "pw1")
	require.NoError(t, err)

	_, wrongPw := svc.Login(ctx, "alice@test.com", "wrong")
	_, unknown := svc.Login(ctx, "nobody@test.com", "pw1")

	require.Error(t, wrongPw)
	require.Error(t, unknown)
	assert.ErrorIs(t, wrongPw, ErrInvalidCredentials)
	assert.ErrorIs(t, unknown, ErrInvalidCredentials)
	// Identical error either way: callers cannot probe which emails exist.
	assert.Equal(t, wrongPw.Error(), unknown.Error())
}

func TestAuthService_Login_UsesStoredRole(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, "alice", "alice@test.com", "pw1")
	require.NoError(t, err)

	// Promote directly in the store; the next login must mint an admin token.
	require.NoError(t, svc.Repo.DB.Model(&res.User).Update("role", "admin").Error)

	login, err := svc.Login(ctx, "alice@test.com", "pw1")
	require.NoError(t, err)

	claims, err := tokens.AccessClaimsFromToken(login.Token, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestAuthService_Profile(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t)
	ctx := context.Background()

	res, err := svc.Register(ctx, "alice", "alice@test.com", "pw1")
	require.NoError(t, err)

	user, err := svc.Profile(ctx, res.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@test.com", user.Email)

	_, err = svc.Profile(ctx, 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
