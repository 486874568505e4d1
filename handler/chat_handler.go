package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"sports-federation-api/dto/req"
	"sports-federation-api/dto/res"
	"sports-federation-api/entity"
	"sports-federation-api/usecase"
)

type ChatHandler struct {
	usecase.ChatUsecase
	*logrus.Logger
}

func NewChatHandler(chatUsecase usecase.ChatUsecase, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{
		ChatUsecase: chatUsecase,
		Logger:      logger,
	}
}

func (handler *ChatHandler) GetAllRooms(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	roomResponses, err := handler.ChatUsecase.GetRoomsByUser(c.Context(), userID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	responses := res.CommonResponse[[]res.RoomResponse]{
		Message:    "Successfully to Get All Chats",
		StatusCode: fiber.StatusOK,
		Data:       roomResponses,
	}

	return c.Status(fiber.StatusOK).JSON(responses)
}

func (handler *ChatHandler) GetMessagesByRoomID(c *fiber.Ctx) error {
	roomID := c.Params("roomId")
	userID, _ := c.Locals("user_id").(string)

	if roomID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "roomId is required",
		})
	}

	messages, err := handler.ChatUsecase.GetMessagesByRoomID(c.Context(), userID, roomID)
	if err != nil {
		if errors.Is(err, usecase.ErrNotRoomMember) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		handler.Logger.WithError(err).Error("Failed to get messages by room ID")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"roomId":   roomID,
		"messages": messages,
	})
}

func (handler *ChatHandler) CreateRoom(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	payload := new(req.CreateRoomRequest)
	if err := c.BodyParser(payload); err != nil {
		return err
	}

	room, err := handler.ChatUsecase.CreateRoom(c.Context(), userID, payload)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to create chat room")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	response := res.CommonResponse[*entity.ChatRoom]{
		Message:    "Successfully to create chat room",
		StatusCode: fiber.StatusOK,
		Data:       room,
	}
	return c.Status(fiber.StatusOK).JSON(response)
}
