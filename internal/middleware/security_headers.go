package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// SecurityHeaders sets nosniff, frame denial and a CSP that lets the
// frontend connect and allows https and data images.
func SecurityHeaders(frontendOrigin string) gin.HandlerFunc {
	connectSrc := "'self'"
	if origin := strings.TrimSpace(frontendOrigin); origin != "" {
		connectSrc += " " + origin
	}
	csp := "default-src 'self'; connect-src " + connectSrc +
		"; script-src 'self'; style-src 'self' 'unsafe-inline'; font-src 'self'; img-src 'self' https: data:;"

	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer")
		c.Header("Content-Security-Policy", csp)
		c.Next()
	}
}
