package res

type MessageResponse struct {
	MessageID   string `json:"messageId"`
	ChatRoomID  string `json:"chatRoomId"`
	Content     string `json:"content"`
	MessageType string `json:"messageType"`
	SenderID    string `json:"senderId"`
	SenderName  string `json:"senderName"`
	SentAt      string `json:"sentAt"`
}

type NotificationResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	IsRead    bool   `json:"isRead"`
	CreatedAt string `json:"createdAt"`
}
