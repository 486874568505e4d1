package entity

type PlayerProfile struct {
	BaseEntity
	UserID        string `json:"userId" gorm:"type:varchar(255);unique;not null"`
	DisplayName   string `json:"displayName" gorm:"type:varchar(100)"`
	PhotoURL      string `json:"photoUrl,omitempty" gorm:"type:text"`
	StateCode     string `json:"stateCode,omitempty" gorm:"type:varchar(10)"`
	RankingPoints uint   `json:"rankingPoints" gorm:"default:0"`
}
