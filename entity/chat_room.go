package entity

import (
	"time"

	"sports-federation-api/enum"
)

type ChatRoom struct {
	BaseEntity
	Name          string        `json:"name,omitempty" gorm:"type:varchar(100);null"` // empty for direct chats
	RoomType      enum.RoomType `json:"roomType" gorm:"type:varchar(12)"`
	LastMessageAt *time.Time    `json:"lastMessageAt,omitempty" gorm:"null"`

	Participants []ChatParticipant `json:"participants" gorm:"foreignKey:ChatRoomID;constraint:OnDelete:CASCADE;"`
	Messages     []ChatMessage     `json:"-" gorm:"foreignKey:ChatRoomID;constraint:OnDelete:CASCADE;"`
}
