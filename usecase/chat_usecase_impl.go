package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"sports-federation-api/dto/req"
	"sports-federation-api/dto/res"
	"sports-federation-api/entity"
	"sports-federation-api/enum"
	"sports-federation-api/repository"
)

var ErrNotRoomMember = errors.New("user not authorized for this chat room")

type ChatUsecaseImpl struct {
	*repository.ChatRoomRepository
	ParticipantRepo *repository.ParticipantRepository
	MessageRepo     *repository.MessageRepository
	*validator.Validate
	*logrus.Logger
	*gorm.DB
}

func NewChatUsecase(
	roomRepository *repository.ChatRoomRepository,
	participantRepository *repository.ParticipantRepository,
	messageRepository *repository.MessageRepository,
	validate *validator.Validate,
	logger *logrus.Logger,
	DB *gorm.DB,
) *ChatUsecaseImpl {
	return &ChatUsecaseImpl{
		ChatRoomRepository: roomRepository,
		ParticipantRepo:    participantRepository,
		MessageRepo:        messageRepository,
		Validate:           validate,
		Logger:             logger,
		DB:                 DB,
	}
}

// EnsureDirectRoom reuses an existing direct room between two users or
// provisions a new one with both participants.
func (uc *ChatUsecaseImpl) EnsureDirectRoom(ctx context.Context, userAID, userBID string) (*entity.ChatRoom, error) {
	existingRoom, err := uc.ChatRoomRepository.FindDirectRoom(ctx, uc.DB, userAID, userBID)
	if err != nil {
		return nil, err
	}
	if existingRoom != nil {
		return existingRoom, nil
	}

	newRoom := &entity.ChatRoom{
		RoomType: enum.RoomTypeDirect,
	}

	now := time.Now()
	participants := []entity.ChatParticipant{
		{UserID: userAID, JoinedAt: now},
		{UserID: userBID, JoinedAt: now},
	}

	if err := uc.ChatRoomRepository.CreateRoomWithParticipants(ctx, uc.DB, newRoom, participants); err != nil {
		return nil, err
	}

	return newRoom, nil
}

func (uc *ChatUsecaseImpl) CreateRoom(ctx context.Context, creatorID string, request *req.CreateRoomRequest) (*entity.ChatRoom, error) {
	if err := uc.Validate.Struct(request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate request : %v", err)
		return nil, err
	}

	if request.RoomType == string(enum.RoomTypeDirect) {
		if len(request.MemberIDs) != 1 {
			return nil, errors.New("direct rooms require exactly one other member")
		}
		return uc.EnsureDirectRoom(ctx, creatorID, request.MemberIDs[0])
	}

	newRoom := &entity.ChatRoom{
		Name:     request.Name,
		RoomType: enum.RoomType(request.RoomType),
	}

	now := time.Now()
	participants := make([]entity.ChatParticipant, 0, len(request.MemberIDs)+1)
	participants = append(participants, entity.ChatParticipant{UserID: creatorID, JoinedAt: now})
	for _, id := range request.MemberIDs {
		if id == creatorID {
			continue
		}
		participants = append(participants, entity.ChatParticipant{UserID: id, JoinedAt: now})
	}

	if err := uc.ChatRoomRepository.CreateRoomWithParticipants(ctx, uc.DB, newRoom, participants); err != nil {
		return nil, err
	}

	return newRoom, nil
}

func (uc *ChatUsecaseImpl) GetRoomsByUser(ctx context.Context, userID string) ([]res.RoomResponse, error) {
	rooms, err := uc.ChatRoomRepository.FindAllByUserID(ctx, uc.DB, userID)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to get rooms by user ID")
		return nil, err
	}

	var roomResponses []res.RoomResponse

	for _, room := range rooms {
		name := room.Name
		if room.RoomType == enum.RoomTypeDirect {
			// direct rooms are anonymous; label with the other side
			for _, participant := range room.Participants {
				if participant.UserID != userID {
					var otherUser entity.User
					if err := uc.DB.First(&otherUser, "id = ?", participant.UserID).Error; err == nil {
						name = otherUser.Name
					}
					break
				}
			}
		}

		response := res.RoomResponse{
			RoomID:   room.ID,
			Name:     name,
			RoomType: string(room.RoomType),
		}
		if room.LastMessageAt != nil {
			response.LastMessageTime = room.LastMessageAt.Format("2006-01-02 15:04:05")
		}
		if latest, err := uc.MessageRepo.FindLatestByRoomID(ctx, uc.DB, room.ID); err == nil && latest != nil {
			response.LastMessage = latest.Content
		}

		roomResponses = append(roomResponses, response)
	}

	return roomResponses, nil
}

func (uc *ChatUsecaseImpl) GetMessagesByRoomID(ctx context.Context, userID, roomID string) ([]res.MessageResponse, error) {
	// history is participant-only, same source of truth as the socket path
	isParticipant, err := uc.ParticipantRepo.IsMember(ctx, uc.DB, roomID, userID)
	if err != nil {
		return nil, err
	}
	if !isParticipant {
		return nil, ErrNotRoomMember
	}

	messages, err := uc.MessageRepo.FindAllByRoomID(ctx, uc.DB, roomID)
	if err != nil {
		return nil, err
	}

	var responses []res.MessageResponse
	for _, msg := range messages {
		responses = append(responses, res.MessageResponse{
			MessageID:   msg.ID,
			ChatRoomID:  msg.ChatRoomID,
			Content:     msg.Content,
			MessageType: string(msg.MessageType),
			SenderID:    msg.SenderID,
			SenderName:  msg.Sender.Name,
			SentAt:      msg.SentAt.Format("2006-01-02 15:04:05"),
		})
	}

	return responses, nil
}
