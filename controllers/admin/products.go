package admin

import (
	"strconv"
	"topupgame/database"
	"topupgame/helpers"
	"topupgame/models"
	"topupgame/storage"

	"github.com/gofiber/fiber/v2"
)

func ListProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := database.DB.Model(&models.Product{}).
		Joins("JOIN games ON games.id = products.game_id AND games.deleted_at IS NULL").
		Order("games.name ASC, products.harga ASC").
		Preload("Game").
		Find(&products).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_PRODUCTS")
	}
	return helpers.JSONSuccess(c, "Products retrieved", products)
}

func CreateProduct(c *fiber.Ctx) error {
	gameID, err := strconv.Atoi(c.FormValue("game_id"))
	if err != nil || gameID <= 0 {
		return helpers.JSONError(c, "INVALID_GAME_ID")
	}
	paket := c.FormValue("paket")
	harga, err := strconv.ParseInt(c.FormValue("harga"), 10, 64)
	if paket == "" || err != nil || harga <= 0 {
		return helpers.JSONError(c, "PAKET_AND_HARGA_REQUIRED")
	}

	var game models.Game
	if err := database.DB.First(&game, gameID).Error; err != nil {
		return helpers.JSONError(c, "GAME_NOT_FOUND")
	}

	product := models.Product{
		GameID: game.ID,
		Paket:  paket,
		Harga:  harga,
	}

	if raw, ok, err := readFormImage(c, "image"); ok {
		if err != nil {
			return helpers.JSONError(c, "FAILED_TO_READ_IMAGE")
		}
		imageURL, err := storage.Default.UploadImage(c.Context(), raw)
		if err != nil {
			return helpers.JSONError(c, "FAILED_TO_UPLOAD_IMAGE")
		}
		product.ImageURL = imageURL
	}

	if err := database.DB.Create(&product).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_PRODUCT")
	}
	return helpers.JSONSuccess(c, "Product created", product)
}

func UpdateProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_PRODUCT_ID")
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		return helpers.JSONError(c, "PRODUCT_NOT_FOUND")
	}

	updates := map[string]any{}
	if paket := c.FormValue("paket"); paket != "" {
		updates["paket"] = paket
	}
	if hargaValue := c.FormValue("harga"); hargaValue != "" {
		harga, err := strconv.ParseInt(hargaValue, 10, 64)
		if err != nil || harga <= 0 {
			return helpers.JSONError(c, "INVALID_HARGA")
		}
		updates["harga"] = harga
	}
	if raw, ok, err := readFormImage(c, "image"); ok {
		if err != nil {
			return helpers.JSONError(c, "FAILED_TO_READ_IMAGE")
		}
		imageURL, err := storage.Default.UploadImage(c.Context(), raw)
		if err != nil {
			return helpers.JSONError(c, "FAILED_TO_UPLOAD_IMAGE")
		}
		updates["image_url"] = imageURL
	}
	if len(updates) == 0 {
		return helpers.JSONSuccess(c, "Nothing to update", product)
	}

	if err := database.DB.Model(&product).Updates(updates).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_UPDATE_PRODUCT")
	}
	return helpers.JSONSuccess(c, "Product updated", product)
}

func DeleteProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_PRODUCT_ID")
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		return helpers.JSONError(c, "PRODUCT_NOT_FOUND")
	}

	if err := database.DB.Delete(&product).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_DELETE_PRODUCT")
	}
	return helpers.JSONSuccess(c, "Product deleted", nil)
}
