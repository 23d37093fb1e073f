package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"custdesk/internal/server/auth"
)

const userIDKey = "userID"

// authMiddleware requires a valid "Authorization: Bearer <token>" header and
// stores the token's user id in the gin context.
func authMiddleware(secretKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			errorJSON(c, http.StatusUnauthorized, "missing bearer token")
			c.Abort()
			return
		}

		userID, err := auth.GetUserIDFromToken(token, secretKey)
		if err != nil {
			errorJSON(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}
