package usecase

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"sports-federation-api/dto/req"
	"sports-federation-api/dto/res"
	"sports-federation-api/entity"
	"sports-federation-api/repository"
	"sports-federation-api/ws"
)

type NotificationUsecaseImpl struct {
	*repository.NotificationRepository
	Dispatcher *ws.NotificationDispatcher
	*validator.Validate
	*logrus.Logger
	*gorm.DB
}

func NewNotificationUsecase(
	notificationRepository *repository.NotificationRepository,
	dispatcher *ws.NotificationDispatcher,
	validate *validator.Validate,
	logger *logrus.Logger,
	DB *gorm.DB,
) NotificationUsecase {
	return &NotificationUsecaseImpl{
		NotificationRepository: notificationRepository,
		Dispatcher:             dispatcher,
		Validate:               validate,
		Logger:                 logger,
		DB:                     DB,
	}
}

func (uc *NotificationUsecaseImpl) GetUnread(ctx context.Context, userID string) ([]res.NotificationResponse, error) {
	notifications, err := uc.NotificationRepository.FindUnreadByUser(ctx, uc.DB, userID)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to get unread notifications")
		return nil, err
	}

	var responses []res.NotificationResponse
	for _, notification := range notifications {
		responses = append(responses, res.NotificationResponse{
			ID:        notification.ID,
			Title:     notification.Title,
			Body:      notification.Body,
			IsRead:    notification.IsRead,
			CreatedAt: notification.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	return responses, nil
}

// Announce persists the durable notification rows for targeted users,
// then pushes the real-time nudge. The socket push is best-effort;
// offline users catch up from the stored rows.
func (uc *NotificationUsecaseImpl) Announce(ctx context.Context, request *req.AnnounceRequest) error {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate request : %v", err)
		return err
	}

	payload := map[string]string{
		"title": request.Title,
		"body":  request.Body,
	}

	if len(request.UserIDs) == 0 {
		return uc.Dispatcher.Announce(ctx, payload)
	}

	for _, userID := range request.UserIDs {
		notification := &entity.Notification{
			UserID: userID,
			Title:  request.Title,
			Body:   request.Body,
		}
		if err := uc.NotificationRepository.Save(ctx, uc.DB, notification); err != nil {
			uc.Logger.WithError(err).Errorf("failed to save notification for user %s", userID)
			return err
		}
	}

	return uc.Dispatcher.NotifyUsers(ctx, request.UserIDs, payload)
}
