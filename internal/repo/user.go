package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/shopdeck/storefront/internal/models"
)

var ErrDuplicateEmail = errors.New("email already exists")

// CreateUser attempts the insert and classifies the unique-index violation,
// instead of pre-checking and racing a concurrent registration.
func (r *GormRepo) CreateUser(ctx context.Context, u *models.User) error {
	if err := r.DB.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *GormRepo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// RoleByID reads the current role. Admin gating always goes through here so a
// stale token role never grants admin rights.
func (r *GormRepo) RoleByID(ctx context.Context, id uint) (string, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Select("role").Where("id = ?", id).First(&user).Error; err != nil {
		return "", err
	}
	return user.Role, nil
}
