package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bizdir/pkg/utils"
)

// JWTAuthMiddleware guards mutating routes when a signing secret is
// configured. It only establishes who the caller is; record-level ownership
// checks are deliberately not performed here or anywhere downstream.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondText(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondText(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}
