package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"sports-federation-api/entity"
	"sports-federation-api/enum"
)

func newTestDB(t *testing.T) *gorm.DB {
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
		&entity.Account{},
		&entity.User{},
		&entity.PlayerProfile{},
		&entity.ChatRoom{},
		&entity.ChatParticipant{},
		&entity.ChatMessage{},
		&entity.Notification{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *entity.User {
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

func seedRoom(t *testing.T, db *gorm.DB, roomType enum.RoomType, memberIDs ...string) *entity.ChatRoom {
	t.Helper()
	room := &entity.ChatRoom{RoomType: roomType}
	participants := make([]entity.ChatParticipant, 0, len(memberIDs))
	for _, id := range memberIDs {
		participants = append(participants, entity.ChatParticipant{UserID: id, JoinedAt: time.Now()})
	}
	require.NoError(t, NewChatRoomRepository().CreateRoomWithParticipants(context.Background(), db, room, participants))
	return room
}

func TestAddMemberIdempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewParticipantRepository()
	user := seedUser(t, db, "alice")
	room := seedRoom(t, db, enum.RoomTypeGroup)

	require.NoError(t, repo.AddMember(context.Background(), db, room.ID, user.ID))
	// a second join resolves through the unique index, not an error
	require.NoError(t, repo.AddMember(context.Background(), db, room.ID, user.ID))

	var count int64
	require.NoError(t, db.Model(&entity.ChatParticipant{}).
		Where("chat_room_id = ? AND user_id = ?", room.ID, user.ID).
		Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestIsMember(t *testing.T) {
	db := newTestDB(t)
	repo := NewParticipantRepository()
	member := seedUser(t, db, "alice")
	outsider := seedUser(t, db, "bob")
	room := seedRoom(t, db, enum.RoomTypeGroup, member.ID)

	isMember, err := repo.IsMember(context.Background(), db, room.ID, member.ID)
	require.NoError(t, err)
	require.True(t, isMember)

	isMember, err = repo.IsMember(context.Background(), db, room.ID, outsider.ID)
	require.NoError(t, err)
	require.False(t, isMember)
}

func TestRoomIDsByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewParticipantRepository()
	user := seedUser(t, db, "alice")
	first := seedRoom(t, db, enum.RoomTypeGroup, user.ID)
	second := seedRoom(t, db, enum.RoomTypeTournament, user.ID)
	seedRoom(t, db, enum.RoomTypeGroup) // unrelated room

	roomIDs, err := repo.RoomIDsByUser(context.Background(), db, user.ID)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{first.ID, second.ID}, roomIDs)
}

func TestUpdateLastRead(t *testing.T) {
	db := newTestDB(t)
	repo := NewParticipantRepository()
	user := seedUser(t, db, "alice")
	room := seedRoom(t, db, enum.RoomTypeGroup, user.ID)

	readAt := time.Now()
	require.NoError(t, repo.UpdateLastRead(context.Background(), db, room.ID, user.ID, readAt))

	var participant entity.ChatParticipant
	require.NoError(t, db.Where("chat_room_id = ? AND user_id = ?", room.ID, user.ID).First(&participant).Error)
	require.NotNil(t, participant.LastRead)
	require.WithinDuration(t, readAt, *participant.LastRead, time.Second)
}

func TestTouchLastMessage(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRoomRepository()
	room := seedRoom(t, db, enum.RoomTypeGroup)
	require.Nil(t, room.LastMessageAt)

	at := time.Now()
	require.NoError(t, repo.TouchLastMessage(context.Background(), db, room.ID, at))

	updated, err := repo.FindRoomByID(context.Background(), db, room.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.LastMessageAt)
	require.WithinDuration(t, at, *updated.LastMessageAt, time.Second)
}

func TestFindDirectRoomReuse(t *testing.T) {
	db := newTestDB(t)
	repo := NewChatRoomRepository()
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	missing, err := repo.FindDirectRoom(context.Background(), db, alice.ID, bob.ID)
	require.NoError(t, err)
	require.Nil(t, missing)

	room := seedRoom(t, db, enum.RoomTypeDirect, alice.ID, bob.ID)

	found, err := repo.FindDirectRoom(context.Background(), db, alice.ID, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, room.ID, found.ID)
}

func TestMessageFindWithSender(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository()
	sender := seedUser(t, db, "alice")
	require.NoError(t, db.Create(&entity.PlayerProfile{
		UserID:      sender.ID,
		DisplayName: "Alice P.",
	}).Error)
	room := seedRoom(t, db, enum.RoomTypeGroup, sender.ID)

	message := &entity.ChatMessage{
		ChatRoomID:  room.ID,
		SenderID:    sender.ID,
		Content:     "hello",
		MessageType: enum.MessageTypeText,
		SentAt:      time.Now(),
	}
	require.NoError(t, repo.Save(context.Background(), db, message))

	full, err := repo.FindWithSender(context.Background(), db, message.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", full.Sender.Name)
	require.NotNil(t, full.Sender.Profile)
	require.Equal(t, "Alice P.", full.Sender.Profile.DisplayName)
}

func TestFindAllByRoomIDOrdersBySentAt(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository()
	sender := seedUser(t, db, "alice")
	room := seedRoom(t, db, enum.RoomTypeGroup, sender.ID)

	base := time.Now()
	for i, content := range []string{"first", "second", "third"} {
		require.NoError(t, repo.Save(context.Background(), db, &entity.ChatMessage{
			ChatRoomID:  room.ID,
			SenderID:    sender.ID,
			Content:     content,
			MessageType: enum.MessageTypeText,
			SentAt:      base.Add(time.Duration(i) * time.Second),
		}))
	}

	messages, err := repo.FindAllByRoomID(context.Background(), db, room.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	require.Equal(t, "first", messages[0].Content)
	require.Equal(t, "third", messages[2].Content)
}

func TestFindLatestByRoomID(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository()
	sender := seedUser(t, db, "alice")
	room := seedRoom(t, db, enum.RoomTypeGroup, sender.ID)

	latest, err := repo.FindLatestByRoomID(context.Background(), db, room.ID)
	require.NoError(t, err)
	require.Nil(t, latest, "empty room has no latest message")

	base := time.Now()
	for i, content := range []string{"older", "newest"} {
		require.NoError(t, repo.Save(context.Background(), db, &entity.ChatMessage{
			ChatRoomID:  room.ID,
			SenderID:    sender.ID,
			Content:     content,
			MessageType: enum.MessageTypeText,
			SentAt:      base.Add(time.Duration(i) * time.Second),
		}))
	}

	latest, err = repo.FindLatestByRoomID(context.Background(), db, room.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	require.Equal(t, "newest", latest.Content)
}

func TestNotificationFindUnread(t *testing.T) {
	db := newTestDB(t)
	repo := NewNotificationRepository()
	user := seedUser(t, db, "alice")

	require.NoError(t, repo.Save(context.Background(), db, &entity.Notification{
		UserID: user.ID,
		Title:  "match scheduled",
		Body:   "court 3, 10am",
	}))
	require.NoError(t, repo.Save(context.Background(), db, &entity.Notification{
		UserID: user.ID,
		Title:  "fees due",
		IsRead: true,
	}))

	unread, err := repo.FindUnreadByUser(context.Background(), db, user.ID)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	require.Equal(t, "match scheduled", unread[0].Title)
}
