package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"sports-federation-api/entity"
)

type ParticipantRepository struct {
	Repository[entity.ChatParticipant]
}

func NewParticipantRepository() *ParticipantRepository {
	return &ParticipantRepository{}
}

func (repository ParticipantRepository) IsMember(ctx context.Context, db *gorm.DB, roomID, userID string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&entity.ChatParticipant{}).
		Where("chat_room_id = ? AND user_id = ?", roomID, userID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (repository ParticipantRepository) RoomIDsByUser(ctx context.Context, db *gorm.DB, userID string) ([]string, error) {
	var roomIDs []string
	err := db.WithContext(ctx).
		Model(&entity.ChatParticipant{}).
		Where("user_id = ?", userID).
		Pluck("chat_room_id", &roomIDs).Error
	return roomIDs, err
}

// AddMember inserts a membership row. A duplicate-key violation on
// (chat_room_id, user_id) means the user already belongs to the room;
// the store's unique index arbitrates concurrent joins, so that case
// is treated as success.
func (repository ParticipantRepository) AddMember(ctx context.Context, db *gorm.DB, roomID, userID string) error {
	participant := entity.ChatParticipant{
		ChatRoomID: roomID,
		UserID:     userID,
		JoinedAt:   time.Now(),
	}
	err := db.WithContext(ctx).Create(&participant).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// UpdateLastRead stamps last_read for (user, room). The value is
// per-user, not per-connection; whichever connection acts most
// recently wins.
func (repository ParticipantRepository) UpdateLastRead(ctx context.Context, db *gorm.DB, roomID, userID string, at time.Time) error {
	return db.WithContext(ctx).
		Model(&entity.ChatParticipant{}).
		Where("chat_room_id = ? AND user_id = ?", roomID, userID).
		Update("last_read", at).Error
}
