package usecase

import (
	"context"

	"sports-federation-api/dto/req"
	"sports-federation-api/dto/res"
	"sports-federation-api/entity"
)

type ChatUsecase interface {
	EnsureDirectRoom(ctx context.Context, userAID, userBID string) (*entity.ChatRoom, error)
	CreateRoom(ctx context.Context, creatorID string, request *req.CreateRoomRequest) (*entity.ChatRoom, error)
	GetRoomsByUser(ctx context.Context, userID string) ([]res.RoomResponse, error)
	GetMessagesByRoomID(ctx context.Context, userID, roomID string) ([]res.MessageResponse, error)
}
