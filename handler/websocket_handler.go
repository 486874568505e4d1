package handler

import (
	"context"
	"strings"

	"github.com/gofiber/contrib/websocket"
	"github.com/sirupsen/logrus"

	"sports-federation-api/ws"
)

type WebSocketHandler struct {
	Manager *ws.SessionManager
	*logrus.Logger
}

func NewWebSocketHandler(manager *ws.SessionManager, logger *logrus.Logger) *WebSocketHandler {
	return &WebSocketHandler{Manager: manager, Logger: logger}
}

// HandleWebSocket drives one connection: authenticate first, then read
// frames in order until the transport closes. Auth failures reject the
// connection before any event is processed.
func (handler *WebSocketHandler) HandleWebSocket(c *websocket.Conn) {
	ctx := context.Background()

	user, err := handler.Manager.Authenticate(ctx, credentialOf(c))
	if err != nil {
		handler.Logger.WithError(err).Warn("Rejected websocket connection")
		_ = c.WriteJSON(ws.OutboundEvent{
			Type: ws.EventMessageError,
			Data: ws.MessageErrorData{Error: err.Error()},
		})
		c.Close()
		return
	}

	client := handler.Manager.Connect(user, c)
	defer handler.Manager.Disconnect(client)

	for {
		_, raw, err := c.ReadMessage()
		if err != nil {
			// unexpected transport errors and clean closes both end in
			// the same disconnect cleanup
			handler.Logger.WithError(err).Debugf("Read loop ended for user %s", user.ID)
			break
		}
		handler.Manager.HandleEvent(ctx, client, raw)
	}
}

// credentialOf pulls the bearer credential from the handshake: a
// dedicated token field first, the Authorization header otherwise.
func credentialOf(c *websocket.Conn) string {
	if token := c.Query("token"); token != "" {
		return token
	}
	if header, ok := c.Locals("auth_header").(string); ok {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
