package api

import (
	"bitwise74/review-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type movieFetchBody struct {
	ID uint `json:"id"`
}

// MovieFetch returns a single movie with its reviews and each review's author
func (a *API) MovieFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data movieFetchBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	var movie model.Movie

	err := a.DB.
		Preload("Reviews.User").
		Where("id = ?", data.ID).
		First(&movie).
		Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "Movie not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch movie", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"movie": movie,
	})
}
