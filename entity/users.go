package entity

import "sports-federation-api/enum"

type User struct {
	BaseEntity
	Name        string    `json:"name" gorm:"type:varchar(255)"`
	Email       string    `json:"email" gorm:"unique;type:varchar(100)"`
	Role        enum.Role `json:"role" gorm:"type:varchar(20);default:'player'"`
	Avatar      string    `json:"avatar,omitempty" gorm:"type:text"`
	PhoneNumber string    `json:"phoneNumber" gorm:"unique;type:varchar(20)"`
	AuthId      string    `json:"authId" gorm:"type:varchar(255);unique"`

	Profile       *PlayerProfile    `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	Messages      []ChatMessage     `json:"-" gorm:"foreignKey:SenderID"`
	Participating []ChatParticipant `json:"-" gorm:"foreignKey:UserID"`
}
