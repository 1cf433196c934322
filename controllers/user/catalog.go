package user

import (
	"topupgame/database"
	"topupgame/helpers"
	"topupgame/models"
	"topupgame/services"

	"github.com/gofiber/fiber/v2"
)

func ListGames(c *fiber.Ctx) error {
	var games []models.Game
	if err := database.DB.Order("name ASC").Find(&games).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_GAMES")
	}
	return helpers.JSONSuccess(c, "Games retrieved", games)
}

// ListProducts returns the catalog ordered by game name then price, both
// ascending, regardless of insertion order. Optional ?game_id= narrows it to
// one game.
func ListProducts(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Product{}).
		Joins("JOIN games ON games.id = products.game_id AND games.deleted_at IS NULL").
		Order("games.name ASC, products.harga ASC").
		Preload("Game")

	if gameID := c.QueryInt("game_id"); gameID > 0 {
		query = query.Where("products.game_id = ?", gameID)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_PRODUCTS")
	}
	return helpers.JSONSuccess(c, "Products retrieved", products)
}

type SelectProductRequest struct {
	ProductID uint `json:"product_id"`
}

// SelectProduct remembers the user's current pick in session scratch so the
// order form can be prefilled on the next render.
func SelectProduct(c *fiber.Ctx) error {
	sess := c.Locals("session").(*services.Session)

	var req SelectProductRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.ProductID == 0 {
		return helpers.JSONError(c, "PRODUCT_ID_REQUIRED")
	}

	var product models.Product
	if err := database.DB.Preload("Game").First(&product, req.ProductID).Error; err != nil {
		return helpers.JSONError(c, "PRODUCT_NOT_FOUND")
	}

	sess.SetSelection(product.GameID, product.ID)
	return helpers.JSONSuccess(c, "Product selected", product)
}
