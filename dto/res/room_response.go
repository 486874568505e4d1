package res

type RoomResponse struct {
	RoomID          string `json:"roomId"`
	Name            string `json:"name"`
	RoomType        string `json:"roomType"`
	LastMessage     string `json:"lastMessage,omitempty"`
	LastMessageTime string `json:"lastMessageTime,omitempty"`
}
