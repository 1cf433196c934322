package user

import (
	"io"
	"topupgame/database"
	"topupgame/helpers"
	"topupgame/models"
	"topupgame/services"
	"topupgame/storage"

	"github.com/gofiber/fiber/v2"
)

// UploadProof stores the payment-proof image for a waiting order. The proof
// URL and the Menunggu -> Diproses advance land in one update; if the upload
// fails nothing is written and the order stays waiting.
func UploadProof(c *fiber.Ctx) error {
	sess := c.Locals("session").(*services.Session)

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_TRANSACTION_ID")
	}

	var transaction models.Transaction
	if err := database.DB.Where("id = ? AND username = ?", id, sess.Username).First(&transaction).Error; err != nil {
		return helpers.JSONError(c, "TRANSACTION_NOT_FOUND")
	}
	if transaction.Status != models.StatusMenunggu {
		return helpers.JSONError(c, "TRANSACTION_NOT_AWAITING_PAYMENT")
	}

	fileHeader, err := c.FormFile("proof")
	if err != nil {
		return helpers.JSONError(c, "PROOF_FILE_REQUIRED")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return helpers.JSONError(c, "PROOF_FILE_REQUIRED")
	}
	defer file.Close()
	raw, err := io.ReadAll(file)
	if err != nil {
		return helpers.JSONError(c, "PROOF_FILE_REQUIRED")
	}

	proofURL, err := storage.Default.UploadImage(c.Context(), raw)
	if err != nil {
		return helpers.JSONError(c, "FAILED_TO_UPLOAD_PROOF")
	}

	if err := database.DB.Model(&transaction).Updates(map[string]any{
		"proof_url": proofURL,
		"status":    models.StatusDiproses,
	}).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_UPDATE_TRANSACTION")
	}

	sess.ClearPendingPayment(transaction.ID)
	return helpers.JSONSuccess(c, "Payment proof uploaded", fiber.Map{
		"id":        transaction.ID,
		"status":    models.StatusDiproses,
		"proof_url": proofURL,
	})
}
