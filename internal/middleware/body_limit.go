package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"social-spectrum-server/internal/config"

	"github.com/gin-gonic/gin"
)

// BodyLimitMiddleware caps request bodies at limits.json_body_kb. Multipart
// requests to one of uploadRoutes ("METHOD /full/path") get limits.upload_mb
// instead; multipart sent anywhere else is held to the JSON limit.
func BodyLimitMiddleware(cfg *config.Config, uploadRoutes ...string) gin.HandlerFunc {
	maxKB := cfg.Limits.JSONBodyKB
	if maxKB <= 0 {
		maxKB = 20
	}
	jsonMaxBytes := int64(maxKB) * 1024
	jsonMessage := fmt.Sprintf("Request body can not exceed %dkb", maxKB)

	maxMB := cfg.Limits.UploadMB
	if maxMB <= 0 {
		maxMB = 10
	}
	// room for the other form fields
	uploadMaxBytes := int64(maxMB)*1024*1024 + 64*1024
	uploadMessage := fmt.Sprintf("Upload can not exceed %dMB", maxMB)

	uploads := make(map[string]struct{}, len(uploadRoutes))
	for _, route := range uploadRoutes {
		uploads[route] = struct{}{}
	}

	return func(c *gin.Context) {
		maxBytes, message := jsonMaxBytes, jsonMessage
		if strings.HasPrefix(c.ContentType(), "multipart/") {
			if _, ok := uploads[c.Request.Method+" "+c.FullPath()]; ok {
				maxBytes, message = uploadMaxBytes, uploadMessage
			}
		}

		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{
				"status":  "fail",
				"message": message,
			})
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
