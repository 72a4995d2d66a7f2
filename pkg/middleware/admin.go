package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sparkleclean/sparkleclean/backend/go-services/pkg/metrics"
)

// AdminGuard returns a Gin middleware that protects the admin routes with a
// single process-lifetime shared secret. The token travels either as the
// `token` query parameter or the `x-admin-token` header; a plain equality
// check against the injected secret decides. One matching token grants
// access to every admin operation until the process restarts.
func AdminGuard(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			token = c.GetHeader("x-admin-token")
		}
		if token == "" || token != secret {
			metrics.AdminRejected.Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "unauthorized"})
			return
		}
		c.Next()
	}
}
