package api

import (
	"bitwise74/review-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserLogout clears both token cookies and drops the stored refresh token,
// which invalidates the session server-side as well
func (a *API) UserLogout(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(string)

	err := a.DB.
		Model(model.User{}).
		Where("id = ?", userID).
		Update("refresh_token", "").
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to clear refresh token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.SetCookie("accessToken", "", -1, "/", "", secureCookies(), true)
	c.SetCookie("refreshToken", "", -1, "/", "", secureCookies(), true)

	c.Status(http.StatusNoContent)
}
