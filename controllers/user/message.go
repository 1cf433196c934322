package user

import (
	"strings"
	"topupgame/database"
	"topupgame/helpers"
	"topupgame/models"
	"topupgame/services"

	"github.com/gofiber/fiber/v2"
)

// GetConversation returns the full user<->admin history merged both ways and
// sorted ascending by time, then marks the admin's lines as read.
func GetConversation(c *fiber.Ctx) error {
	sess := c.Locals("session").(*services.Session)

	var messages []models.Message
	if err := database.DB.
		Where("(sender = ? AND recipient = ?) OR (sender = ? AND recipient = ?)",
			sess.Username, models.AdminUsername, models.AdminUsername, sess.Username).
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_MESSAGES")
	}

	database.DB.Model(&models.Message{}).
		Where("sender = ? AND recipient = ? AND is_read = ?", models.AdminUsername, sess.Username, false).
		Update("is_read", true)

	return helpers.JSONSuccess(c, "Conversation retrieved", messages)
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

func SendMessage(c *fiber.Ctx) error {
	sess := c.Locals("session").(*services.Session)

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if strings.TrimSpace(req.Content) == "" {
		return helpers.JSONError(c, "MESSAGE_CONTENT_REQUIRED")
	}

	message := models.Message{
		Sender:    sess.Username,
		Recipient: models.AdminUsername,
		Content:   req.Content,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_SEND_MESSAGE")
	}
	return helpers.JSONSuccess(c, "Message sent", message)
}
