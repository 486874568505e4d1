package ws

import (
	"context"
	"time"

	"gorm.io/gorm"

	"sports-federation-api/entity"
	"sports-federation-api/repository"
)

// Store is the durable-store surface the chat core depends on. Keeping
// it an interface lets tests run the session manager against a fake.
type Store interface {
	UserWithProfile(ctx context.Context, id string) (*entity.User, error)
	IsMember(ctx context.Context, roomID, userID string) (bool, error)
	RoomIDsByUser(ctx context.Context, userID string) ([]string, error)
	SaveMessage(ctx context.Context, message *entity.ChatMessage) error
	MessageWithSender(ctx context.Context, id string) (*entity.ChatMessage, error)
	TouchRoom(ctx context.Context, roomID string, at time.Time) error
	UpdateLastRead(ctx context.Context, roomID, userID string, at time.Time) error
}

type GormStore struct {
	db           *gorm.DB
	users        *repository.UserRepository
	participants *repository.ParticipantRepository
	rooms        *repository.ChatRoomRepository
	messages     *repository.MessageRepository
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db:           db,
		users:        repository.NewUserRepository(),
		participants: repository.NewParticipantRepository(),
		rooms:        repository.NewChatRoomRepository(),
		messages:     repository.NewMessageRepository(),
	}
}

func (s *GormStore) UserWithProfile(ctx context.Context, id string) (*entity.User, error) {
	return s.users.FindWithProfile(ctx, s.db, id)
}

func (s *GormStore) IsMember(ctx context.Context, roomID, userID string) (bool, error) {
	return s.participants.IsMember(ctx, s.db, roomID, userID)
}

func (s *GormStore) RoomIDsByUser(ctx context.Context, userID string) ([]string, error) {
	return s.participants.RoomIDsByUser(ctx, s.db, userID)
}

func (s *GormStore) SaveMessage(ctx context.Context, message *entity.ChatMessage) error {
	return s.messages.Save(ctx, s.db, message)
}

func (s *GormStore) MessageWithSender(ctx context.Context, id string) (*entity.ChatMessage, error) {
	return s.messages.FindWithSender(ctx, s.db, id)
}

func (s *GormStore) TouchRoom(ctx context.Context, roomID string, at time.Time) error {
	return s.rooms.TouchLastMessage(ctx, s.db, roomID, at)
}

func (s *GormStore) UpdateLastRead(ctx context.Context, roomID, userID string, at time.Time) error {
	return s.participants.UpdateLastRead(ctx, s.db, roomID, userID, at)
}
