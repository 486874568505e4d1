package entity

type Notification struct {
	BaseEntity
	UserID string `json:"userId" gorm:"type:varchar(255);not null;index"`
	Title  string `json:"title" gorm:"type:varchar(120)"`
	Body   string `json:"body" gorm:"type:text"`
	IsRead bool   `json:"isRead" gorm:"default:false"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID"`
}
