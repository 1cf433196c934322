package user

import (
	"topupgame/database"
	"topupgame/helpers"
	"topupgame/models"
	"topupgame/services"

	"github.com/gofiber/fiber/v2"
)

type CreateReviewRequest struct {
	GameID  uint   `json:"game_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func CreateReview(c *fiber.Ctx) error {
	sess := c.Locals("session").(*services.Session)

	var req CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return helpers.JSONError(c, "RATING_MUST_BE_1_TO_5")
	}

	var game models.Game
	if err := database.DB.First(&game, req.GameID).Error; err != nil {
		return helpers.JSONError(c, "GAME_NOT_FOUND")
	}

	review := models.Review{
		GameID:   game.ID,
		Username: sess.Username,
		Rating:   req.Rating,
		Comment:  req.Comment,
		Visible:  true,
	}
	if err := database.DB.Create(&review).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_CREATE_REVIEW")
	}
	return helpers.JSONSuccess(c, "Review submitted", review)
}

// ListGameReviews returns only admin-approved (visible) reviews, newest first.
func ListGameReviews(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_GAME_ID")
	}

	var reviews []models.Review
	if err := database.DB.
		Where("game_id = ? AND visible = ?", id, true).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_REVIEWS")
	}
	return helpers.JSONSuccess(c, "Reviews retrieved", reviews)
}
