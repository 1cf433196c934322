package admin

import (
	"topupgame/database"
	"topupgame/helpers"
	"topupgame/models"

	"github.com/gofiber/fiber/v2"
)

func ListReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	if err := database.DB.
		Preload("Game").
		Order("created_at DESC, id DESC").
		Find(&reviews).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_FETCH_REVIEWS")
	}
	return helpers.JSONSuccess(c, "Reviews retrieved", reviews)
}

type SetVisibilityRequest struct {
	Visible bool `json:"visible"`
}

func SetReviewVisibility(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_REVIEW_ID")
	}

	var req SetVisibilityRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	var review models.Review
	if err := database.DB.First(&review, id).Error; err != nil {
		return helpers.JSONError(c, "REVIEW_NOT_FOUND")
	}

	if err := database.DB.Model(&review).Update("visible", req.Visible).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_UPDATE_REVIEW")
	}
	return helpers.JSONSuccess(c, "Review visibility updated", fiber.Map{
		"id":      review.ID,
		"visible": req.Visible,
	})
}

func DeleteReview(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_REVIEW_ID")
	}

	var review models.Review
	if err := database.DB.First(&review, id).Error; err != nil {
		return helpers.JSONError(c, "REVIEW_NOT_FOUND")
	}

	if err := database.DB.Delete(&review).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_DELETE_REVIEW")
	}
	return helpers.JSONSuccess(c, "Review deleted", nil)
}
