package middleware

import (
	"net/http"

	"bitwise74/review-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewJWTMiddleware gates a route behind a valid access token. The token is
// read from the accessToken cookie. A missing cookie rejects the request
// outright, a token that fails verification is rejected as forbidden.
// On success the decoded user ID is stored in the context as userID.
func NewJWTMiddleware(t *security.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		tokenStr, err := c.Cookie("accessToken")
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "No accessToken cookie",
				"requestID": requestID,
			})
			return
		}

		userID, err := t.VerifyAccess(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":     "token_invalid",
				"requestID": requestID,
			})

			zap.L().Debug("Rejected access token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
