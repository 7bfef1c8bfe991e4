package middleware

import "github.com/gin-gonic/gin"

// CacheControlMiddleware sets a fixed Cache-Control directive, e.g. "no-store"
// for API payloads that change with every logged activity.
func CacheControlMiddleware(directive string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", directive)
		c.Next()
	}
}
