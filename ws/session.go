package ws

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"sports-federation-api/config/logger"
	"sports-federation-api/entity"
	"sports-federation-api/enum"
	"sports-federation-api/security"
)

// Connection-level failures. Any of these rejects the attempt before a
// single room subscription exists.
var (
	ErrUnauthenticated   = errors.New("missing credential")
	ErrInvalidCredential = errors.New("credential is not valid")
	ErrUserNotFound      = errors.New("user no longer exists")
)

const timeLayout = "2006-01-02 15:04:05"

// SessionManager owns the websocket session lifecycle: the auth gate,
// per-event authorization, message persistence and fan-out. One
// instance per process; it is the only writer to the registry.
type SessionManager struct {
	verifier security.TokenVerifier
	store    Store
	registry *Registry
	relay    Relay
	validate *validator.Validate
	log      *logger.AppLogger
}

func NewSessionManager(
	verifier security.TokenVerifier,
	store Store,
	registry *Registry,
	relay Relay,
	validate *validator.Validate,
	log *logger.AppLogger,
) *SessionManager {
	return &SessionManager{
		verifier: verifier,
		store:    store,
		registry: registry,
		relay:    relay,
		validate: validate,
		log:      log,
	}
}

func (m *SessionManager) Registry() *Registry {
	return m.registry
}

// Authenticate gates the handshake. The credential comes from a token
// field or an Authorization header; the resolved user record includes
// any linked player profile for sender attribution.
func (m *SessionManager) Authenticate(ctx context.Context, credential string) (*entity.User, error) {
	if credential == "" {
		return nil, ErrUnauthenticated
	}

	identity, err := m.verifier.Verify(credential)
	if err != nil {
		m.log.WS.Warning.Warn().Err(err).Msg("credential verification failed")
		return nil, ErrInvalidCredential
	}

	user, err := m.store.UserWithProfile(ctx, identity.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// Connect registers the connection, puts it on the user's private
// channel and kicks off the room-membership load. The load runs in the
// background: room events arriving before it finishes re-validate
// membership themselves, so only fan-out breadth waits on it.
func (m *SessionManager) Connect(user *entity.User, conn Conn) *Client {
	client := newClient(conn, user.ID, displayName(user))
	m.registry.Register(client)
	go client.writePump(m.log.WS.Error)
	go m.loadRoomSubscriptions(client)

	m.log.WS.Info.Info().
		Str("userId", user.ID).
		Str("connId", client.ID).
		Msg("client connected")
	return client
}

func (m *SessionManager) loadRoomSubscriptions(client *Client) {
	roomIDs, err := m.store.RoomIDsByUser(context.Background(), client.UserID)
	if err != nil {
		m.log.WS.Error.Error().Err(err).Str("userId", client.UserID).Msg("failed to load room memberships")
		return
	}
	for _, roomID := range roomIDs {
		m.registry.Subscribe(roomID, client)
	}
}

// Disconnect tears down session state only. Message history, read
// markers and room membership all survive in the store.
func (m *SessionManager) Disconnect(client *Client) {
	m.registry.Unregister(client)
	client.close()
	m.log.WS.Info.Info().
		Str("userId", client.UserID).
		Str("connId", client.ID).
		Msg("client disconnected")
}

// HandleEvent decodes, validates and dispatches one inbound frame.
// Failures are reported to the sending connection only; the session
// stays usable.
func (m *SessionManager) HandleEvent(ctx context.Context, client *Client, raw []byte) {
	var event InboundEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		m.sendError(client, "malformed event")
		return
	}
	if err := m.validate.Struct(&event); err != nil {
		m.sendError(client, "malformed event")
		return
	}

	switch event.Type {
	case EventJoinChat:
		var payload JoinChatPayload
		if err := m.decode(event.Data, &payload); err != nil {
			m.sendError(client, "invalid join_chat payload")
			return
		}
		m.JoinRoom(ctx, client, payload.ChatRoomID)
	case EventLeaveChat:
		var payload LeaveChatPayload
		if err := m.decode(event.Data, &payload); err != nil {
			m.sendError(client, "invalid leave_chat payload")
			return
		}
		m.LeaveRoom(client, payload.ChatRoomID)
	case EventSendMessage:
		var payload SendMessagePayload
		if err := m.decode(event.Data, &payload); err != nil {
			m.sendError(client, "invalid send_message payload")
			return
		}
		m.SendMessage(ctx, client, payload)
	case EventTypingStart:
		var payload TypingPayload
		if err := m.decode(event.Data, &payload); err != nil {
			m.sendError(client, "invalid typing_start payload")
			return
		}
		m.TypingStart(ctx, client, payload.ChatRoomID)
	case EventTypingStop:
		var payload TypingPayload
		if err := m.decode(event.Data, &payload); err != nil {
			m.sendError(client, "invalid typing_stop payload")
			return
		}
		m.TypingStop(ctx, client, payload.ChatRoomID)
	case EventMarkRead:
		var payload MarkReadPayload
		if err := m.decode(event.Data, &payload); err != nil {
			m.sendError(client, "invalid mark_read payload")
			return
		}
		m.MarkAsRead(ctx, client, payload)
	default:
		m.sendError(client, "unknown event type")
	}
}

// JoinRoom subscribes the connection to a room channel after checking
// the participant table. Rejection is per-call and non-fatal.
func (m *SessionManager) JoinRoom(ctx context.Context, client *Client, roomID string) {
	member, err := m.store.IsMember(ctx, roomID, client.UserID)
	if err != nil {
		m.log.WS.Error.Error().Err(err).Str("roomId", roomID).Msg("membership lookup failed")
		m.sendEvent(client, OutboundEvent{Type: EventJoinedChat, Data: JoinedChatData{
			ChatRoomID: roomID,
			Success:    false,
			Error:      "failed to join chat",
		}})
		return
	}
	if !member {
		m.sendEvent(client, OutboundEvent{Type: EventJoinedChat, Data: JoinedChatData{
			ChatRoomID: roomID,
			Success:    false,
			Error:      "not authorized",
		}})
		return
	}

	m.registry.Subscribe(roomID, client)
	m.sendEvent(client, OutboundEvent{Type: EventJoinedChat, Data: JoinedChatData{
		ChatRoomID: roomID,
		Success:    true,
	}})
}

// LeaveRoom drops this session's subscription only. The participant
// row is permanent membership and is never touched here.
func (m *SessionManager) LeaveRoom(client *Client, roomID string) {
	m.registry.Unsubscribe(roomID, client)
}

// SendMessage persists and fans out one message. Membership is
// re-verified at call time, not cached from Connect, so a user removed
// from a room mid-session loses publish access immediately.
func (m *SessionManager) SendMessage(ctx context.Context, client *Client, payload SendMessagePayload) {
	if strings.TrimSpace(payload.Content) == "" {
		m.sendError(client, "content must not be empty")
		return
	}

	member, err := m.store.IsMember(ctx, payload.ChatRoomID, client.UserID)
	if err != nil {
		m.log.WS.Error.Error().Err(err).Str("roomId", payload.ChatRoomID).Msg("membership lookup failed")
		m.sendError(client, "failed to send message")
		return
	}
	if !member {
		m.sendError(client, "not authorized")
		return
	}

	messageType := enum.MessageType(payload.MessageType)
	if messageType == "" {
		messageType = enum.MessageTypeText
	}

	message := &entity.ChatMessage{
		ChatRoomID:  payload.ChatRoomID,
		SenderID:    client.UserID,
		Content:     payload.Content,
		MessageType: messageType,
		SentAt:      time.Now(),
	}
	if err := m.store.SaveMessage(ctx, message); err != nil {
		m.log.WS.Error.Error().Err(err).Str("roomId", payload.ChatRoomID).Msg("failed to persist message")
		m.sendError(client, "failed to send message")
		return
	}

	data := NewMessageData{
		ID:          message.ID,
		ChatRoomID:  message.ChatRoomID,
		Content:     message.Content,
		MessageType: string(message.MessageType),
		SentAt:      message.SentAt.Format(timeLayout),
		Sender:      Sender{ID: client.UserID, Username: client.Username},
	}
	// re-fetch with sender attribution so consumers get the display
	// profile without another round trip; the stored row is the
	// fallback if the read fails
	if full, err := m.store.MessageWithSender(ctx, message.ID); err == nil {
		data.Sender = senderOf(&full.Sender)
	} else {
		m.log.WS.Warning.Warn().Err(err).Str("messageId", message.ID).Msg("failed to enrich message sender")
	}

	if err := m.store.TouchRoom(ctx, payload.ChatRoomID, message.SentAt); err != nil {
		m.log.WS.Error.Error().Err(err).Str("roomId", payload.ChatRoomID).Msg("failed to update last message time")
	}

	// fan-out includes the sender's own connection; clients rely on the
	// broadcast rather than a local echo
	m.broadcastRoom(ctx, payload.ChatRoomID, "", OutboundEvent{Type: EventNewMessage, Data: data})
}

// TypingStart is a transient signal: no persistence, no membership
// check, sender excluded from fan-out.
func (m *SessionManager) TypingStart(ctx context.Context, client *Client, roomID string) {
	m.broadcastRoom(ctx, roomID, client.ID, OutboundEvent{Type: EventUserTyping, Data: UserTypingData{
		UserID:     client.UserID,
		Username:   client.Username,
		ChatRoomID: roomID,
	}})
}

func (m *SessionManager) TypingStop(ctx context.Context, client *Client, roomID string) {
	m.broadcastRoom(ctx, roomID, client.ID, OutboundEvent{Type: EventUserStopTyping, Data: UserStopTypingData{
		UserID:     client.UserID,
		ChatRoomID: roomID,
	}})
}

// MarkAsRead stamps last_read for (user, room). The message id is not
// validated; it travels to other clients purely as a cursor hint.
func (m *SessionManager) MarkAsRead(ctx context.Context, client *Client, payload MarkReadPayload) {
	if err := m.store.UpdateLastRead(ctx, payload.ChatRoomID, client.UserID, time.Now()); err != nil {
		m.log.WS.Error.Error().Err(err).Str("roomId", payload.ChatRoomID).Msg("failed to update last read")
		m.sendError(client, "failed to mark as read")
		return
	}

	m.broadcastRoom(ctx, payload.ChatRoomID, client.ID, OutboundEvent{Type: EventMessagesRead, Data: MessagesReadData{
		UserID:     client.UserID,
		ChatRoomID: payload.ChatRoomID,
		MessageID:  payload.MessageID,
	}})
}

func (m *SessionManager) broadcastRoom(ctx context.Context, roomID, excludeConn string, event OutboundEvent) {
	payload, err := event.encode()
	if err != nil {
		m.log.WS.Error.Error().Err(err).Str("type", event.Type).Msg("failed to encode event")
		return
	}
	frame := Frame{
		Scope:       ScopeRoom,
		Target:      roomID,
		ExcludeConn: excludeConn,
		Payload:     payload,
	}
	if err := m.relay.Publish(ctx, frame); err != nil {
		m.log.WS.Error.Error().Err(err).Str("roomId", roomID).Msg("failed to publish frame")
	}
}

// sendEvent writes directly to one connection, bypassing the relay;
// acks and errors are never broadcast.
func (m *SessionManager) sendEvent(client *Client, event OutboundEvent) {
	payload, err := event.encode()
	if err != nil {
		m.log.WS.Error.Error().Err(err).Str("type", event.Type).Msg("failed to encode event")
		return
	}
	if !client.enqueue(payload) {
		m.log.WS.Warning.Warn().Str("connId", client.ID).Msg("dropping event for slow client")
	}
}

func (m *SessionManager) sendError(client *Client, message string) {
	m.sendEvent(client, OutboundEvent{Type: EventMessageError, Data: MessageErrorData{Error: message}})
}

func (m *SessionManager) decode(data json.RawMessage, payload interface{}) error {
	if err := json.Unmarshal(data, payload); err != nil {
		return err
	}
	return m.validate.Struct(payload)
}

func displayName(user *entity.User) string {
	if user.Profile != nil && user.Profile.DisplayName != "" {
		return user.Profile.DisplayName
	}
	return user.Name
}

func senderOf(user *entity.User) Sender {
	sender := Sender{ID: user.ID, Username: user.Name}
	if user.Profile != nil {
		sender.Profile = &SenderProfile{
			DisplayName: user.Profile.DisplayName,
			PhotoURL:    user.Profile.PhotoURL,
		}
	}
	return sender
}
