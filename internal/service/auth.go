package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/shopdeck/storefront/internal/hash"
	"github.com/shopdeck/storefront/internal/logging"
	"github.com/shopdeck/storefront/internal/models"
	"github.com/shopdeck/storefront/internal/repo"
	"github.com/shopdeck/storefront/internal/tokens"
)

type AuthService struct {
	Repo      *repo.GormRepo
	JWTSecret []byte
}

type AuthResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// roleForEmail is the bootstrap rule: an email containing "admin" registers
// as an admin, everyone else as a regular user.
func roleForEmail(email string) string {
	if strings.Contains(email, "admin") {
		return models.RoleAdmin
	}
	return models.RoleUser
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("all fields required: %w", ErrValidation)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: pwHash,
		Role:         roleForEmail(email),
	}
	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			l.Warn("register_conflict", "email", email)
			return nil, fmt.Errorf("email already exists: %w", ErrConflict)
		}
		l.Error("register_error", "error", err)
		return nil, err
	}

	token, err := tokens.SignAccessToken(user.ID, user.Email, user.Role, s.JWTSecret)
	if err != nil {
		return nil, err
	}

	l.Info("user_registered", "user_id", user.ID, "role", user.Role)
	return &AuthResult{Token: token, User: user}, nil
}

// Login returns the same ErrInvalidCredentials for an unknown email and for a
// wrong password, so callers cannot tell the two apart.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	user, err := s.Repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		l.Error("login_error", "error", err)
		return nil, err
	}
	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	// Role comes from the stored row, not from any previously issued token.
	token, err := tokens.SignAccessToken(user.ID, user.Email, user.Role, s.JWTSecret)
	if err != nil {
		return nil, err
	}

	l.Info("user_logged_in", "user_id", user.ID)
	return &AuthResult{Token: token, User: *user}, nil
}

func (s *AuthService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.Repo.UserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}
