package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"sports-federation-api/dto/req"
	"sports-federation-api/entity"
	"sports-federation-api/enum"
	"sports-federation-api/repository"
)

func newChatFixture(t *testing.T) (*ChatUsecaseImpl, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "t_",
			SingularTable: true,
		},
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.PlayerProfile{},
		&entity.ChatRoom{},
		&entity.ChatParticipant{},
		&entity.ChatMessage{},
	))

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	uc := NewChatUsecase(
		repository.NewChatRoomRepository(),
		repository.NewParticipantRepository(),
		repository.NewMessageRepository(),
		validator.New(),
		logger,
		db,
	)
	return uc, db
}

func seedChatUser(t *testing.T, db *gorm.DB, name string) *entity.User {
	t.Helper()
	user := &entity.User{
		Name:        name,
		Email:       name + "@federation.test",
		Role:        enum.RolePlayer,
		PhoneNumber: "555-" + name,
		AuthId:      "auth-" + name,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestCreateDirectRoomRequiresExactlyOneMember(t *testing.T) {
	uc, db := newChatFixture(t)
	alice := seedChatUser(t, db, "alice")
	bob := seedChatUser(t, db, "bob")
	carol := seedChatUser(t, db, "carol")

	_, err := uc.CreateRoom(context.Background(), alice.ID, &req.CreateRoomRequest{
		RoomType:  "direct",
		MemberIDs: []string{bob.ID, carol.ID},
	})
	require.EqualError(t, err, "direct rooms require exactly one other member")

	var count int64
	require.NoError(t, db.Model(&entity.ChatRoom{}).Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestCreateDirectRoomReusesExisting(t *testing.T) {
	uc, db := newChatFixture(t)
	alice := seedChatUser(t, db, "alice")
	bob := seedChatUser(t, db, "bob")

	first, err := uc.CreateRoom(context.Background(), alice.ID, &req.CreateRoomRequest{
		RoomType:  "direct",
		MemberIDs: []string{bob.ID},
	})
	require.NoError(t, err)

	second, err := uc.CreateRoom(context.Background(), alice.ID, &req.CreateRoomRequest{
		RoomType:  "direct",
		MemberIDs: []string{bob.ID},
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&entity.ChatRoom{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestGetRoomsByUserIncludesLastMessage(t *testing.T) {
	uc, db := newChatFixture(t)
	alice := seedChatUser(t, db, "alice")
	bob := seedChatUser(t, db, "bob")

	room, err := uc.CreateRoom(context.Background(), alice.ID, &req.CreateRoomRequest{
		Name:      "club chat",
		RoomType:  "group",
		MemberIDs: []string{bob.ID},
	})
	require.NoError(t, err)

	sentAt := time.Now()
	require.NoError(t, db.Create(&entity.ChatMessage{
		ChatRoomID:  room.ID,
		SenderID:    bob.ID,
		Content:     "see you at practice",
		MessageType: enum.MessageTypeText,
		SentAt:      sentAt,
	}).Error)
	require.NoError(t, uc.ChatRoomRepository.TouchLastMessage(context.Background(), db, room.ID, sentAt))

	rooms, err := uc.GetRoomsByUser(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	require.Equal(t, "club chat", rooms[0].Name)
	require.Equal(t, "see you at practice", rooms[0].LastMessage)
	require.NotEmpty(t, rooms[0].LastMessageTime)
}

func TestGetMessagesRequiresMembership(t *testing.T) {
	uc, db := newChatFixture(t)
	alice := seedChatUser(t, db, "alice")
	bob := seedChatUser(t, db, "bob")
	outsider := seedChatUser(t, db, "eve")

	room, err := uc.CreateRoom(context.Background(), alice.ID, &req.CreateRoomRequest{
		RoomType:  "direct",
		MemberIDs: []string{bob.ID},
	})
	require.NoError(t, err)

	_, err = uc.GetMessagesByRoomID(context.Background(), outsider.ID, room.ID)
	require.ErrorIs(t, err, ErrNotRoomMember)

	_, err = uc.GetMessagesByRoomID(context.Background(), alice.ID, room.ID)
	require.NoError(t, err)
}
