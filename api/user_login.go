package api

import (
	"bitwise74/review-api/model"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type loginBody struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *API) UserLogin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Email == "" && data.Username == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Either an email or a username is required",
			"requestID": requestID,
		})
		return
	}

	if data.Password == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Password field can't be empty",
			"requestID": requestID,
		})
		return
	}

	var user model.User

	query := a.DB
	if data.Email != "" {
		query = query.Where("email = ?", data.Email)
	} else {
		query = query.Where("lower(username) = ?", strings.ToLower(data.Username))
	}

	if err := query.First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{
				"error":     "User not found",
				"requestID": requestID,
			})
			return
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	ok, err := a.Hash.Verify(data.Password, user.PasswordHash)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to verify password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":     "Invalid credentials",
			"requestID": requestID,
		})
		return
	}

	accessToken, err := a.Tokens.IssueAccessToken(user.ID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate access token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	refreshToken, err := a.Tokens.IssueRefreshToken(user.ID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate refresh token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// The refresh token is stored on the user row and rotated on every
	// login so old ones stop being useful
	err = a.DB.
		Model(model.User{}).
		Where("id = ?", user.ID).
		Update("refresh_token", refreshToken).
		Error
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to persist refresh token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	accessTTL := viper.GetInt("jwt.access_ttl_minutes") * 60
	refreshTTL := viper.GetInt("jwt.refresh_ttl_hours") * 3600

	c.SetCookie("accessToken", accessToken, accessTTL, "/", "", secureCookies(), true)
	c.SetCookie("refreshToken", refreshToken, refreshTTL, "/", "", secureCookies(), true)

	c.JSON(http.StatusOK, gin.H{
		"user":         user,
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
	})
}
