package admin

import (
	"strings"
	"topupgame/database"
	"topupgame/helpers"
	"topupgame/models"

	"github.com/gofiber/fiber/v2"
)

type conversationSummary struct {
	Username    string `json:"username"`
	LastMessage string `json:"last_message"`
	UnreadCount int    `json:"unread_count"`
}

// ListConversations lists every user the admin has a conversation with,
// newest activity first, with their unread counts.
func ListConversations(c *fiber.Ctx) error {
	var messages []models.Message
	if err := database.DB.
		Where("sender = ? OR recipient = ?", models.AdminUsername, models.AdminUsername).
		Order("created_at DESC, id DESC").
		Find(&messages).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_MESSAGES")
	}

	order := []string{}
	byPartner := map[string]*conversationSummary{}
	for _, m := range messages {
		partner := m.Sender
		if partner == models.AdminUsername {
			partner = m.Recipient
		}
		summary, seen := byPartner[partner]
		if !seen {
			summary = &conversationSummary{Username: partner, LastMessage: m.Content}
			byPartner[partner] = summary
			order = append(order, partner)
		}
		if m.Sender == partner && !m.IsRead {
			summary.UnreadCount++
		}
	}

	conversations := make([]conversationSummary, 0, len(order))
	for _, partner := range order {
		conversations = append(conversations, *byPartner[partner])
	}
	return helpers.JSONSuccess(c, "Conversations retrieved", conversations)
}

func GetConversation(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return helpers.JSONError(c, "USERNAME_REQUIRED")
	}

	var messages []models.Message
	if err := database.DB.
		Where("(sender = ? AND recipient = ?) OR (sender = ? AND recipient = ?)",
			username, models.AdminUsername, models.AdminUsername, username).
		Order("created_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_MESSAGES")
	}

	database.DB.Model(&models.Message{}).
		Where("sender = ? AND recipient = ? AND is_read = ?", username, models.AdminUsername, false).
		Update("is_read", true)

	return helpers.JSONSuccess(c, "Conversation retrieved", messages)
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

func SendMessage(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return helpers.JSONError(c, "USERNAME_REQUIRED")
	}

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if strings.TrimSpace(req.Content) == "" {
		return helpers.JSONError(c, "MESSAGE_CONTENT_REQUIRED")
	}

	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return helpers.JSONError(c, "USER_NOT_FOUND")
	}

	message := models.Message{
		Sender:    models.AdminUsername,
		Recipient: user.Username,
		Content:   req.Content,
	}
	if err := database.DB.Create(&message).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_SEND_MESSAGE")
	}
	return helpers.JSONSuccess(c, "Message sent", message)
}
