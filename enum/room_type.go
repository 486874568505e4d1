package enum

type RoomType string

const (
	RoomTypeDirect     RoomType = "direct"
	RoomTypeGroup      RoomType = "group"
	RoomTypeTournament RoomType = "tournament"
	RoomTypeState      RoomType = "state"
	RoomTypeClub       RoomType = "club"
)
