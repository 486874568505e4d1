package usecase

import (
	"context"

	"sports-federation-api/dto/req"
	"sports-federation-api/dto/res"
)

type NotificationUsecase interface {
	GetUnread(ctx context.Context, userID string) ([]res.NotificationResponse, error)
	Announce(ctx context.Context, request *req.AnnounceRequest) error
}
