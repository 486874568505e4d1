package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sports-federation-api/entity"
)

type MessageRepository struct {
	Repository[entity.ChatMessage]
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

// FindWithSender re-fetches a stored message together with the sender
// and any linked player profile, so broadcast consumers need no second
// round trip.
func (repository MessageRepository) FindWithSender(ctx context.Context, db *gorm.DB, id string) (*entity.ChatMessage, error) {
	var message entity.ChatMessage
	err := db.WithContext(ctx).
		Preload("Sender").
		Preload("Sender.Profile").
		Where("id = ?", id).
		First(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// FindLatestByRoomID returns the most recent message of a room, or
// nil for a room with no messages yet.
func (repository MessageRepository) FindLatestByRoomID(ctx context.Context, db *gorm.DB, roomID string) (*entity.ChatMessage, error) {
	var message entity.ChatMessage
	err := db.WithContext(ctx).
		Where("chat_room_id = ?", roomID).
		Order("sent_at DESC").
		First(&message).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (repository MessageRepository) FindAllByRoomID(ctx context.Context, db *gorm.DB, roomID string) ([]entity.ChatMessage, error) {
	var messages []entity.ChatMessage
	err := db.WithContext(ctx).
		Preload("Sender").
		Where("chat_room_id = ?", roomID).
		Order("sent_at ASC").
		Find(&messages).Error
	return messages, err
}
