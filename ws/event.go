package ws

import "encoding/json"

// Client -> server event types.
const (
	EventJoinChat    = "join_chat"
	EventLeaveChat   = "leave_chat"
	EventSendMessage = "send_message"
	EventTypingStart = "typing_start"
	EventTypingStop  = "typing_stop"
	EventMarkRead    = "mark_read"
)

// Server -> client event types.
const (
	EventJoinedChat     = "joined_chat"
	EventNewMessage     = "new_message"
	EventMessageError   = "message_error"
	EventUserTyping     = "user_typing"
	EventUserStopTyping = "user_stop_typing"
	EventMessagesRead   = "messages_read"
	EventNotification   = "notification"
	EventAnnouncement   = "announcement"
)

// InboundEvent is the envelope every client frame must decode to. The
// payload is validated against its typed schema before dispatch.
type InboundEvent struct {
	Type string          `json:"type" validate:"required"`
	Data json.RawMessage `json:"data"`
}

type JoinChatPayload struct {
	ChatRoomID string `json:"chatRoomId" validate:"required"`
}

type LeaveChatPayload struct {
	ChatRoomID string `json:"chatRoomId" validate:"required"`
}

type SendMessagePayload struct {
	ChatRoomID  string `json:"chatRoomId" validate:"required"`
	Content     string `json:"content" validate:"required,max=4000"`
	MessageType string `json:"messageType,omitempty" validate:"omitempty,oneof=text image file"`
}

type TypingPayload struct {
	ChatRoomID string `json:"chatRoomId" validate:"required"`
}

type MarkReadPayload struct {
	ChatRoomID string `json:"chatRoomId" validate:"required"`
	MessageID  string `json:"messageId" validate:"required"`
}

type OutboundEvent struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

func (e OutboundEvent) encode() ([]byte, error) {
	return json.Marshal(e)
}

type JoinedChatData struct {
	ChatRoomID string `json:"chatRoomId"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

type SenderProfile struct {
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl,omitempty"`
}

type Sender struct {
	ID       string         `json:"id"`
	Username string         `json:"username"`
	Profile  *SenderProfile `json:"profile,omitempty"`
}

type NewMessageData struct {
	ID          string `json:"id"`
	ChatRoomID  string `json:"chatRoomId"`
	Content     string `json:"content"`
	MessageType string `json:"messageType"`
	SentAt      string `json:"sentAt"`
	Sender      Sender `json:"sender"`
}

type MessageErrorData struct {
	Error string `json:"error"`
}

type UserTypingData struct {
	UserID     string `json:"userId"`
	Username   string `json:"username"`
	ChatRoomID string `json:"chatRoomId"`
}

type UserStopTypingData struct {
	UserID     string `json:"userId"`
	ChatRoomID string `json:"chatRoomId"`
}

type MessagesReadData struct {
	UserID     string `json:"userId"`
	ChatRoomID string `json:"chatRoomId"`
	MessageID  string `json:"messageId"`
}
