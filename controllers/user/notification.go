package user

import (
	"topupgame/database"
	"topupgame/helpers"
	"topupgame/models"
	"topupgame/services"

	"github.com/gofiber/fiber/v2"
)

// PollNotifications is one tick of the status differ: it snapshots the user's
// current order statuses, queues alerts for changes and drains the queue. The
// background watcher feeds the same queue between polls.
func PollNotifications(c *fiber.Ctx) error {
	sess := c.Locals("session").(*services.Session)

	var transactions []models.Transaction
	if err := database.DB.Where("username = ?", sess.Username).Find(&transactions).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_ORDERS")
	}

	current := make(map[uint]string, len(transactions))
	for _, t := range transactions {
		current[t.ID] = t.Status
	}
	sess.ObserveStatuses(current)

	return helpers.JSONSuccess(c, "Notifications retrieved", sess.DrainAlerts())
}
