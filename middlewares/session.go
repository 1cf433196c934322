package middlewares

import (
	"topupgame/helpers"
	"topupgame/models"
	"topupgame/services"

	"github.com/gofiber/fiber/v2"
)

func SessionAuth(c *fiber.Ctx) error {
	token := c.Get("X-Session-Token")
	if token == "" {
		return helpers.JSONError(c, "SESSION_TOKEN_REQUIRED")
	}

	sess, ok := services.Sessions.Get(token)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	c.Locals("session", sess)
	return c.Next()
}

func AdminOnly(c *fiber.Ctx) error {
	sess, ok := c.Locals("session").(*services.Session)
	if !ok || sess.Role != models.RoleAdmin {
		return helpers.JSONError(c, "ADMIN_ONLY")
	}
	return c.Next()
}
