package api

import (
	"bitwise74/review-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MovieList returns the whole catalog with reviews attached. Public and
// cached, this is the landing page query.
func (a *API) MovieList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var movies []model.Movie

	err := a.DB.
		Preload("Reviews").
		Order("title asc").
		Find(&movies).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch movies", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, movies)
}
