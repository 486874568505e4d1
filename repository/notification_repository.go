package repository

import (
	"context"

	"gorm.io/gorm"

	"sports-federation-api/entity"
)

type NotificationRepository struct {
	Repository[entity.Notification]
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (repository NotificationRepository) FindUnreadByUser(ctx context.Context, db *gorm.DB, userID string) ([]entity.Notification, error) {
	var notifications []entity.Notification
	err := db.WithContext(ctx).
		Where("user_id = ? AND is_read = false", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}
