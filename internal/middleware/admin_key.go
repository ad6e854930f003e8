package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/holi/give-server/internal/models"
)

// AdminKey gates privileged operations behind the x-admin-key shared
// secret. An empty configured key disables the route entirely.
func AdminKey(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("x-admin-key")
		if secret == "" || subtle.ConstantTimeCompare([]byte(key), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				models.ErrorResponse{OK: false, Error: "unauthorized"})
			return
		}
		c.Next()
	}
}
