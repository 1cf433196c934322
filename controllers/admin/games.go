package admin

import (
	"io"
	"topupgame/database"
	"topupgame/helpers"
	"topupgame/models"
	"topupgame/storage"

	"github.com/gofiber/fiber/v2"
)

// readFormImage pulls an optional image file out of a multipart form.
// Returns ok=false when the field is absent.
func readFormImage(c *fiber.Ctx, field string) ([]byte, bool, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, false, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, true, err
	}
	defer file.Close()
	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, true, err
	}
	return raw, true, nil
}

func ListGames(c *fiber.Ctx) error {
	var games []models.Game
	if err := database.DB.Order("name ASC").Find(&games).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_GAMES")
	}
	return helpers.JSONSuccess(c, "Games retrieved", games)
}

func CreateGame(c *fiber.Ctx) error {
	name := c.FormValue("name")
	if name == "" {
		return helpers.JSONError(c, "GAME_NAME_REQUIRED")
	}

	game := models.Game{
		Name:        name,
		Description: c.FormValue("description"),
	}

	if raw, ok, err := readFormImage(c, "logo"); ok {
		if err != nil {
			return helpers.JSONError(c, "FAILED_TO_READ_LOGO")
		}
		logoURL, err := storage.Default.UploadImage(c.Context(), raw)
		if err != nil {
			return helpers.JSONError(c, "FAILED_TO_UPLOAD_LOGO")
		}
		game.LogoURL = logoURL
	}

	if err := database.DB.Create(&game).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_GAME")
	}
	return helpers.JSONSuccess(c, "Game created", game)
}

func UpdateGame(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_GAME_ID")
	}

	var game models.Game
	if err := database.DB.First(&game, id).Error; err != nil {
		return helpers.JSONError(c, "GAME_NOT_FOUND")
	}

	updates := map[string]any{}
	if name := c.FormValue("name"); name != "" {
		updates["name"] = name
	}
	if description := c.FormValue("description"); description != "" {
		updates["description"] = description
	}
	if raw, ok, err := readFormImage(c, "logo"); ok {
		if err != nil {
			return helpers.JSONError(c, "FAILED_TO_READ_LOGO")
		}
		logoURL, err := storage.Default.UploadImage(c.Context(), raw)
		if err != nil {
			return helpers.JSONError(c, "FAILED_TO_UPLOAD_LOGO")
		}
		updates["logo_url"] = logoURL
	}
	if len(updates) == 0 {
		return helpers.JSONSuccess(c, "Nothing to update", game)
	}

	if err := database.DB.Model(&game).Updates(updates).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_UPDATE_GAME")
	}
	return helpers.JSONSuccess(c, "Game updated", game)
}

// DeleteGame removes a game and, explicitly, every product under it. The
// cascade is an application contract, not a schema one.
func DeleteGame(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_GAME_ID")
	}

	var game models.Game
	if err := database.DB.First(&game, id).Error; err != nil {
		return helpers.JSONError(c, "GAME_NOT_FOUND")
	}

	if err := database.DB.Where("game_id = ?", game.ID).Delete(&models.Product{}).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_DELETE_GAME_PRODUCTS")
	}
	if err := database.DB.Delete(&game).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_DELETE_GAME")
	}
	return helpers.JSONSuccess(c, "Game deleted", nil)
}
