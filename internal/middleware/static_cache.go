package middleware

import "github.com/gin-gonic/gin"

// StaticCacheMiddleware sets Cache-Control on locally stored images. Object
// names are unique, so the content behind a URL never changes.
func StaticCacheMiddleware(cacheControl string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cacheControl != "" {
			c.Header("Cache-Control", cacheControl)
		}
		c.Next()
	}
}
