package middleware

import (
	"crypto/subtle"
	"net/http"

	"pawspa/config"

	"github.com/gin-gonic/gin"
)

// CronAuthMiddleware guards the scheduled-job endpoints with a static bearer
// token shared with the external scheduler.
func CronAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		expected := config.AppConfig.CronToken
		if !ok || expected == "" || subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
