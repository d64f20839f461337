package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/wedding-app/server/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// EnsureAdmin creates the staff account or resets its password to the given one.
func EnsureAdmin(ctx context.Context, db *gorm.DB, username, password string) (*models.AdminUser, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}

	var user models.AdminUser
	err = db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	switch {
	case err == nil:
		user.Password = string(hashed)
		user.IsStaff = true
		if err := db.WithContext(ctx).Save(&user).Error; err != nil {
			return nil, fmt.Errorf("update admin %q: %w", username, err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.AdminUser{Username: username, Password: string(hashed), IsStaff: true}
		if err := db.WithContext(ctx).Create(&user).Error; err != nil {
			return nil, fmt.Errorf("create admin %q: %w", username, err)
		}
	default:
		return nil, fmt.Errorf("find admin %q: %w", username, err)
	}
	return &user, nil
}

func AuthenticateAdmin(ctx context.Context, db *gorm.DB, username, password string) (*models.AdminUser, error) {
	var user models.AdminUser
	err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find admin %q: %w", username, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func FindAdmin(ctx context.Context, db *gorm.DB, id uuid.UUID) (*models.AdminUser, error) {
	var user models.AdminUser
	err := db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find admin %s: %w", id, err)
	}
	return &user, nil
}
