package admin

import (
	"topupgame/database"
	"topupgame/helpers"
	"topupgame/models"

	"github.com/gofiber/fiber/v2"
)

func ListTransactions(c *fiber.Ctx) error {
	var transactions []models.Transaction
	if err := database.DB.
		Order("created_at DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_TRANSACTIONS")
	}
	return helpers.JSONSuccess(c, "Transactions retrieved", transactions)
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func UpdateTransactionStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_TRANSACTION_ID")
	}

	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if !models.ValidStatus(req.Status) {
		return helpers.JSONError(c, "INVALID_STATUS")
	}

	var transaction models.Transaction
	if err := database.DB.First(&transaction, id).Error; err != nil {
		return helpers.JSONError(c, "TRANSACTION_NOT_FOUND")
	}

	// The failure reason only means anything for a failed order.
	reason := ""
	if req.Status == models.StatusGagal {
		reason = req.Reason
	}

	if err := database.DB.Model(&transaction).Updates(map[string]any{
		"status":      req.Status,
		"fail_reason": reason,
	}).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_UPDATE_TRANSACTION")
	}
	return helpers.JSONSuccess(c, "Transaction status updated", fiber.Map{
		"id":          transaction.ID,
		"status":      req.Status,
		"fail_reason": reason,
	})
}
