package httpx

import (
	"strconv"
	"strings"

	"social-spectrum-server/internal/common"

	"github.com/gin-gonic/gin"
)

const userIDKey = "id"

// SetUserID stores the authenticated caller id.
func SetUserID(c *gin.Context, id uint) {
	c.Set(userIDKey, id)
}

// UserID returns the caller id stored by the auth guard.
func UserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok && id != 0
}

// RequireUserID is UserID for handlers behind the auth guard; a missing id
// is reported as a token failure.
func RequireUserID(c *gin.Context) (uint, error) {
	id, ok := UserID(c)
	if !ok {
		return 0, common.NewAuthError()
	}
	return id, nil
}

// ParseID parses a positive integer id, returning a validation error with
// message otherwise.
func ParseID(raw, message string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, common.NewValidationError(message)
	}
	return uint(id), nil
}
