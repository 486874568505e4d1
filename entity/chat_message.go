package entity

import (
	"time"

	"sports-federation-api/enum"
)

// ChatMessage rows are immutable once created; there is no update or
// delete path.
type ChatMessage struct {
	BaseEntity
	ChatRoomID      string           `json:"chatRoomId" gorm:"type:varchar(255);not null;index"`
	SenderID        string           `json:"senderId" gorm:"type:varchar(255);not null"`
	Content         string           `json:"content" gorm:"type:text;not null"`
	MessageType     enum.MessageType `json:"messageType" gorm:"type:varchar(10);default:'text'"`
	SentAt          time.Time        `json:"sentAt" gorm:"autoCreateTime"`
	IsSystemMessage bool             `json:"isSystemMessage" gorm:"default:false"`

	Room   ChatRoom `json:"-" gorm:"foreignKey:ChatRoomID;references:ID"`
	Sender User     `json:"-" gorm:"foreignKey:SenderID;references:ID"`
}
