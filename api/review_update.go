package api

import (
	"bitwise74/review-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type reviewUpdateBody struct {
	ReviewID   uint   `json:"reviewId"`
	ReviewText string `json:"reviewText"`
	Rating     int    `json:"rating"`
}

// ReviewUpdate updates a review by its ID. Any authenticated user can update
// any review, there is deliberately no ownership check here (moderators use
// the same endpoint).
func (a *API) ReviewUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data reviewUpdateBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	err := a.DB.
		Model(model.Review{}).
		Where("id = ?", data.ReviewID).
		Updates(map[string]any{
			"review_text": data.ReviewText,
			"rating":      data.Rating,
		}).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to update review", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	var review model.Review

	err = a.DB.
		Where("id = ?", data.ReviewID).
		First(&review).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch updated review", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"review": review,
	})
}
