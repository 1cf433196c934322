package auth

import (
	"errors"
	"strings"
	"topupgame/database"
	"topupgame/helpers"
	"topupgame/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	if username == "" || req.Password == "" {
		return helpers.JSONError(c, "USERNAME_AND_PASSWORD_REQUIRED")
	}

	var existing models.User
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		return helpers.JSONError(c, "USERNAME_TAKEN")
	}

	user := models.User{
		Username:     username,
		PasswordHash: helpers.HashPassword(req.Password),
		Role:         models.RoleUser,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		// The unique index still guards against a concurrent register.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helpers.JSONError(c, "USERNAME_TAKEN")
		}
		return helpers.JSONError(c, "FAILED_TO_REGISTER_USER")
	}

	return helpers.JSONSuccess(c, "Registration successful", fiber.Map{
		"username": user.Username,
		"role":     user.Role,
	})
}
