package admin

import (
	"topupgame/database"
	"topupgame/helpers"
	"topupgame/models"

	"github.com/gofiber/fiber/v2"
)

func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("username ASC").Find(&users).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_USERS")
	}
	return helpers.JSONSuccess(c, "Users retrieved", users)
}

// DeleteUser removes an account and, explicitly, every transaction it owns.
// Like the game->product cascade this is an application contract.
func DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_USER_ID")
	}

	var user models.User
	if err := database.DB.First(&user, id).Error; err != nil {
		return helpers.JSONError(c, "USER_NOT_FOUND")
	}
	if user.Role == models.RoleAdmin {
		return helpers.JSONError(c, "CANNOT_DELETE_ADMIN")
	}

	if err := database.DB.Where("username = ?", user.Username).Delete(&models.Transaction{}).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_DELETE_USER_TRANSACTIONS")
	}
	if err := database.DB.Delete(&user).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_DELETE_USER")
	}
	return helpers.JSONSuccess(c, "User deleted", nil)
}
