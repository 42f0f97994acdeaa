package httpx

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "jwt"

type SessionCookie struct {
	secure   bool
	maxAge   time.Duration
	sameSite http.SameSite
}

func NewSessionCookie(secure bool, expiresDays int) *SessionCookie {
	if expiresDays <= 0 {
		expiresDays = 90
	}
	return &SessionCookie{
		secure:   secure,
		maxAge:   time.Duration(expiresDays) * 24 * time.Hour,
		sameSite: http.SameSiteLaxMode,
	}
}

// Set stores the token in an HTTP-only cookie.
func (s *SessionCookie) Set(c *gin.Context, token string) {
	c.SetSameSite(s.sameSite)
	c.SetCookie(SessionCookieName, token, int(s.maxAge.Seconds()), "/", "", s.secure, true)
}

func (s *SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(s.sameSite)
	c.SetCookie(SessionCookieName, "", -1, "/", "", s.secure, true)
}

// Read returns the session token or "" when the cookie is absent.
func (s *SessionCookie) Read(c *gin.Context) string {
	token, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return token
}
