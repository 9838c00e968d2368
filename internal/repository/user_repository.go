package repository

import (
	"context"

	"gorm.io/gorm"

	"apartment-be-svc/internal/models"
)

// UserRepository defines the interface for resident lookups
type UserRepository interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// userRepository implements UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

// GetUserByID retrieves a resident with their apartment; missing users yield gorm.ErrRecordNotFound
func (r *userRepository) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User

	err := r.db.WithContext(ctx).Preload("Apartment").Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}

	return &user, nil
}
