package req

type CreateRoomRequest struct {
	Name      string   `json:"name" validate:"required_unless=RoomType direct,omitempty,max=100"`
	RoomType  string   `json:"roomType" validate:"required,oneof=direct group tournament state club"`
	MemberIDs []string `json:"memberIds" validate:"required,min=1,dive,required"`
}
