package repository

import (
	"context"

	"gorm.io/gorm"

	"sports-federation-api/entity"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindWithProfile loads a user together with the linked player profile
// so a single lookup is enough for sender attribution.
func (repository UserRepository) FindWithProfile(ctx context.Context, db *gorm.DB, id string) (*entity.User, error) {
	var user entity.User
	err := db.WithContext(ctx).
		Preload("Profile").
		Where("id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
