package auth

import (
	"strings"
	"topupgame/database"
	"topupgame/helpers"
	"topupgame/jobs"
	"topupgame/models"
	"topupgame/services"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" || req.Password == "" {
		return helpers.JSONError(c, "USERNAME_AND_PASSWORD_REQUIRED")
	}

	var user models.User
	if err := database.DB.
		Where("username = ? AND password_hash = ?", username, helpers.HashPassword(req.Password)).
		First(&user).Error; err != nil {
		return helpers.JSONError(c, "INVALID_CREDENTIALS")
	}

	sess := services.Sessions.Create(user.Username, user.Role)
	if user.Role == models.RoleUser {
		jobs.StartOrderWatcher(sess)
	}

	return helpers.JSONSuccess(c, "Login successful", fiber.Map{
		"token":    sess.Token,
		"username": user.Username,
		"role":     user.Role,
	})
}
