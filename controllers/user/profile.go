package user

import (
	"topupgame/database"
	"topupgame/helpers"
	"topupgame/models"
	"topupgame/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func GetProfile(c *fiber.Ctx) error {
	sess := c.Locals("session").(*services.Session)

	var user models.User
	if err := database.DB.Where("username = ?", sess.Username).First(&user).Error; err != nil {
		return helpers.JSONError(c, "USER_NOT_FOUND")
	}
	return helpers.JSONSuccess(c, "Profile retrieved", user)
}

type ChangePasswordRequest struct {
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

func ChangePassword(c *fiber.Ctx) error {
	sess := c.Locals("session").(*services.Session)

	var req ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.NewPassword == "" || req.NewPassword != req.ConfirmPassword {
		return helpers.JSONError(c, "PASSWORDS_EMPTY_OR_MISMATCHED")
	}

	if err := database.DB.Model(&models.User{}).
		Where("username = ?", sess.Username).
		Update("password_hash", helpers.HashPassword(req.NewPassword)).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_UPDATE_PASSWORD")
	}
	return helpers.JSONSuccess(c, "Password updated", nil)
}

type UpdateProfileRequest struct {
	Email          string            `json:"email"`
	DefaultGameIDs map[string]string `json:"default_game_ids"`
}

// UpdateProfile saves the optional email and the per-game default account IDs
// used to prefill the order form.
func UpdateProfile(c *fiber.Ctx) error {
	sess := c.Locals("session").(*services.Session)

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	updates := map[string]any{"email": req.Email}
	if req.DefaultGameIDs != nil {
		ids := datatypes.JSONMap{}
		for game, accountID := range req.DefaultGameIDs {
			ids[game] = accountID
		}
		updates["default_game_ids"] = ids
	}

	if err := database.DB.Model(&models.User{}).
		Where("username = ?", sess.Username).
		Updates(updates).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_UPDATE_PROFILE")
	}
	return helpers.JSONSuccess(c, "Profile updated", nil)
}
