package entity

import "time"

// ChatParticipant is the authorization source of truth for room access:
// a connection may only subscribe to or publish into a room when a row
// exists for (chat_room_id, user_id).
type ChatParticipant struct {
	BaseEntity
	ChatRoomID string     `json:"chatRoomId" gorm:"type:varchar(255);not null;uniqueIndex:idx_room_user"`
	UserID     string     `json:"userId" gorm:"type:varchar(255);not null;uniqueIndex:idx_room_user"`
	JoinedAt   time.Time  `json:"joinedAt" gorm:"autoCreateTime"`
	LastRead   *time.Time `json:"lastRead,omitempty" gorm:"null"`

	Room ChatRoom `json:"-" gorm:"foreignKey:ChatRoomID;references:ID;constraint:OnDelete:CASCADE;"`
	User User     `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
}
