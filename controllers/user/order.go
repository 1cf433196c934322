package user

import (
	"topupgame/database"
	"topupgame/helpers"
	"topupgame/models"
	"topupgame/services"

	"github.com/gofiber/fiber/v2"
)

type CreateOrderRequest struct {
	ProductID     uint   `json:"product_id"`
	Nickname      string `json:"nickname"`
	PaymentMethod string `json:"payment_method"`
	GameAccountID string `json:"game_account_id"`
}

func CreateOrder(c *fiber.Ctx) error {
	sess := c.Locals("session").(*services.Session)

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	productID := req.ProductID
	if productID == 0 {
		_, productID = sess.Selection()
	}
	if productID == 0 {
		return helpers.JSONError(c, "PRODUCT_REQUIRED")
	}
	if req.Nickname == "" || req.PaymentMethod == "" {
		return helpers.JSONError(c, "NICKNAME_AND_PAYMENT_METHOD_REQUIRED")
	}

	// Always re-read the product; another session may have edited the catalog.
	var product models.Product
	if err := database.DB.Preload("Game").First(&product, productID).Error; err != nil {
		return helpers.JSONError(c, "PRODUCT_NOT_FOUND")
	}

	accountID := req.GameAccountID
	if accountID == "" {
		var user models.User
		if err := database.DB.Where("username = ?", sess.Username).First(&user).Error; err == nil {
			if saved, ok := user.DefaultGameIDs[product.Game.Name].(string); ok {
				accountID = saved
			}
		}
	}
	if accountID == "" {
		return helpers.JSONError(c, "GAME_ACCOUNT_ID_REQUIRED")
	}

	transaction := models.Transaction{
		Username:      sess.Username,
		GameName:      product.Game.Name,
		Paket:         product.Paket,
		Harga:         product.Harga,
		Nickname:      req.Nickname,
		PaymentMethod: req.PaymentMethod,
		GameAccountID: accountID,
		Status:        models.StatusMenunggu,
	}
	if err := database.DB.Create(&transaction).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_ORDER")
	}

	sess.SetPendingPayment(transaction.ID)
	return helpers.JSONSuccess(c, "Order created", transaction)
}

func ListOrders(c *fiber.Ctx) error {
	sess := c.Locals("session").(*services.Session)

	var transactions []models.Transaction
	if err := database.DB.
		Where("username = ?", sess.Username).
		Order("created_at DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_ORDERS")
	}
	return helpers.JSONSuccess(c, "Orders retrieved", transactions)
}
