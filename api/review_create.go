package api

import (
	"bitwise74/review-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type reviewCreateBody struct {
	MovieID    uint   `json:"id"`
	ReviewText string `json:"reviewText"`
	Rating     int    `json:"rating"`
}

// ReviewCreate inserts a review tied to the authenticated user. There is no
// check that the movie exists or that the user hasn't reviewed it already,
// matching the trusted-frontend model the rest of the review surface uses.
func (a *API) ReviewCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	var data reviewCreateBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	review := model.Review{
		MovieID:    data.MovieID,
		UserID:     userID,
		ReviewText: data.ReviewText,
		Rating:     data.Rating,
	}

	if err := a.DB.Create(&review).Error; err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create review", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"review": review,
	})
}
