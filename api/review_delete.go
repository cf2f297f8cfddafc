package api

import (
	"bitwise74/review-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type reviewDeleteBody struct {
	ReviewID uint `json:"reviewId"`
}

// ReviewDelete deletes a review by its ID. Same trust model as ReviewUpdate:
// no ownership check.
func (a *API) ReviewDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data reviewDeleteBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	err := a.DB.
		Where("id = ?", data.ReviewID).
		Delete(model.Review{}).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete review", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.Status(http.StatusNoContent)
}
