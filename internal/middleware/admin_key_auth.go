package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminKeyHeader carries the shared secret of the back-office operator.
const AdminKeyHeader = "X-Admin-Key"

// AdminKeyAuth guards operator-only routes (withdrawal resolution, manual accrual runs,
// reconciliation of arbitrary accounts). An empty configured key disables the routes.
func AdminKeyAuth(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		if adminKey == "" {
			logger.Warn("Admin route called but no admin key is configured")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin API is disabled"})
			return
		}

		provided := c.GetHeader(AdminKeyHeader)
		if provided == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(adminKey)) != 1 {
			logger.Warn("Admin key missing or invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin key"})
			return
		}

		c.Next()
	}
}
