package auth

import (
	"topupgame/helpers"
	"topupgame/services"

	"github.com/gofiber/fiber/v2"
)

func Logout(c *fiber.Ctx) error {
	sess, ok := c.Locals("session").(*services.Session)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	services.Sessions.Delete(sess.Token)
	return helpers.JSONSuccess(c, "Logged out", nil)
}
