package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const preflightMaxAge = "86400"

// CORS allows every origin on every response. OPTIONS requests are answered
// here with 200 and an empty body for any path, before routing, error
// handling or database access.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")

		if c.Request.Method == http.MethodOptions {
			h := c.Writer.Header()
			h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			h.Set("Access-Control-Allow-Headers", "Content-Type")
			h.Set("Access-Control-Max-Age", preflightMaxAge)
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
