package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"sports-federation-api/entity"
	"sports-federation-api/enum"
)

type ChatRoomRepository struct {
	Repository[entity.ChatRoom]
}

func NewChatRoomRepository() *ChatRoomRepository {
	return &ChatRoomRepository{}
}

func (repository ChatRoomRepository) FindRoomByID(ctx context.Context, db *gorm.DB, id string) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	err := db.WithContext(ctx).Where("id = ?", id).First(&room).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// TouchLastMessage moves the room's last_message_at forward after a send.
func (repository ChatRoomRepository) TouchLastMessage(ctx context.Context, db *gorm.DB, roomID string, at time.Time) error {
	return db.WithContext(ctx).
		Model(&entity.ChatRoom{}).
		Where("id = ?", roomID).
		Update("last_message_at", at).Error
}

func (repository ChatRoomRepository) FindAllByUserID(ctx context.Context, db *gorm.DB, userID string) ([]entity.ChatRoom, error) {
	var rooms []entity.ChatRoom

	err := db.WithContext(ctx).
		Model(&entity.ChatRoom{}).
		Joins("JOIN t_chat_participant cp ON cp.chat_room_id = t_chat_room.id").
		Where("cp.user_id = ?", userID).
		Preload("Participants").
		Find(&rooms).Error

	if err != nil {
		return nil, err
	}

	return rooms, nil
}

func (repository ChatRoomRepository) FindDirectRoom(ctx context.Context, db *gorm.DB, userAID, userBID string) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	err := db.WithContext(ctx).
		Joins("JOIN t_chat_participant cp1 ON cp1.chat_room_id = t_chat_room.id").
		Joins("JOIN t_chat_participant cp2 ON cp2.chat_room_id = t_chat_room.id").
		Where("cp1.user_id = ? AND cp2.user_id = ? AND t_chat_room.room_type = ?", userAID, userBID, enum.RoomTypeDirect).
		First(&room).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	return &room, err
}

func (repository ChatRoomRepository) CreateRoomWithParticipants(ctx context.Context, db *gorm.DB, room *entity.ChatRoom, participants []entity.ChatParticipant) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			return err
		}
		if len(participants) == 0 {
			return nil
		}
		for i := range participants {
			participants[i].ChatRoomID = room.ID
		}
		return tx.Create(&participants).Error
	})
}
