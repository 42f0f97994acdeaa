package middleware

import (
	"social-spectrum-server/internal/common"
	"social-spectrum-server/internal/common/httpx"
	"social-spectrum-server/internal/security"

	"github.com/gin-gonic/gin"
)

// AuthGuard verifies the session cookie and stores the caller id in the
// context. Any token problem ends the request with the jwt_error marker.
func AuthGuard(tokens *security.TokenService, cookies *httpx.SessionCookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookies.Read(c)
		if token == "" {
			httpx.Fail(c, common.NewAuthError())
			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			httpx.Fail(c, common.NewAuthError())
			return
		}

		httpx.SetUserID(c, claims.ID)
		c.Next()
	}
}
