package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"sports-federation-api/dto/req"
	"sports-federation-api/dto/res"
	"sports-federation-api/usecase"
	"sports-federation-api/ws"
)

type NotificationHandler struct {
	usecase.NotificationUsecase
	Dispatcher *ws.NotificationDispatcher
	*logrus.Logger
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase, dispatcher *ws.NotificationDispatcher, logger *logrus.Logger) *NotificationHandler {
	return &NotificationHandler{
		NotificationUsecase: notificationUsecase,
		Dispatcher:          dispatcher,
		Logger:              logger,
	}
}

func (handler *NotificationHandler) GetUnread(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	notifications, err := handler.NotificationUsecase.GetUnread(c.Context(), userID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	responses := res.CommonResponse[[]res.NotificationResponse]{
		Message:    "Successfully to Get Unread Notifications",
		StatusCode: fiber.StatusOK,
		Data:       notifications,
	}
	return c.Status(fiber.StatusOK).JSON(responses)
}

// Announce lets admins push an announcement: to named users or to
// every online connection when no targets are given.
func (handler *NotificationHandler) Announce(c *fiber.Ctx) error {
	payload := new(req.AnnounceRequest)
	if err := c.BodyParser(payload); err != nil {
		return err
	}

	if err := handler.NotificationUsecase.Announce(c.Context(), payload); err != nil {
		handler.Logger.WithError(err).Error("Failed to send announcement")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Announcement dispatched",
	})
}

func (handler *NotificationHandler) GetOnlineUsers(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"onlineUsers": handler.Dispatcher.OnlineUsers(),
	})
}
