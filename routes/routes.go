package routes

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"sports-federation-api/handler"
	"sports-federation-api/middleware"
)

type ConfigRoute struct {
	*fiber.App
	*middleware.Middleware
	*handler.AuthHandler
	*handler.UserHandler
	*handler.ChatHandler
	*handler.NotificationHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
	rc.GetProtectedRoute()
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api/v1")
	app.Post("/auth/register", rc.AuthHandler.RegisterUser)
	app.Post("/auth/login", rc.AuthHandler.LoginUser)
}

func (rc *ConfigRoute) GetProtectedRoute() {
	app := rc.App.Group("/api/v1")
	app.Use(rc.Middleware.JWTProtected)
	app.Use(rc.Middleware.ExtractUserID)

	app.Get("/auth/me", rc.UserHandler.GetUserByToken)

	app.Get("/users", rc.UserHandler.GetAllUsers)

	app.Get("/chats", rc.ChatHandler.GetAllRooms)
	app.Post("/chats", rc.ChatHandler.CreateRoom)
	app.Get("/chats/:roomId/messages", rc.ChatHandler.GetMessagesByRoomID)

	app.Get("/notifications", rc.NotificationHandler.GetUnread)
	app.Get("/notifications/online", rc.NotificationHandler.GetOnlineUsers)
	app.Post("/announcements", rc.Middleware.RequireAdmin, rc.NotificationHandler.Announce)
}

func (rc *ConfigRoute) GetWebSocketRoute(wsHandler *handler.WebSocketHandler) {
	rc.App.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			// headers are gone once the connection is upgraded; stash
			// the credential for the handshake gate
			c.Locals("auth_header", c.Get("Authorization"))
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	rc.App.Get("/ws", websocket.New(wsHandler.HandleWebSocket))
}
