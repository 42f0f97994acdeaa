package httpx

import (
	"log/slog"
	"net/http"

	"social-spectrum-server/internal/common"

	"github.com/gin-gonic/gin"
)

const genericErrorMessage = "Something went wrong"

// ErrorTranslator turns errors recorded with c.Error into the client-facing
// error shape. It is the only place that decides how much detail leaks.
type ErrorTranslator struct {
	production bool
	cookies    *SessionCookie
}

func NewErrorTranslator(production bool, cookies *SessionCookie) *ErrorTranslator {
	return &ErrorTranslator{production: production, cookies: cookies}
}

// Middleware writes the response for the last error recorded by a handler,
// unless the handler already wrote one.
func (t *ErrorTranslator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		t.Write(c, c.Errors.Last().Err)
	}
}

// Fail records err for the translator and stops the handler chain.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func (t *ErrorTranslator) Write(c *gin.Context, err error) {
	serviceErr, ok := common.AsServiceError(err)

	if ok && serviceErr.Code == common.ErrorCodeAuth {
		t.cookies.Clear(c)
		c.JSON(http.StatusUnauthorized, gin.H{"message": common.AuthErrorMessage})
		return
	}

	statusCode := http.StatusInternalServerError
	if ok {
		statusCode = StatusFor(serviceErr.Code)
	}
	if statusCode >= http.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err.Error(),
		)
	}

	if !t.production {
		body := gin.H{
			"status":     statusText(statusCode),
			"statusCode": statusCode,
			"message":    err.Error(),
			"error":      err.Error(),
		}
		if ok {
			body["message"] = serviceErr.Message
			body["stack"] = serviceErr.Stack()
		}
		c.JSON(statusCode, body)
		return
	}

	if ok && serviceErr.Operational {
		c.JSON(statusCode, gin.H{
			"status":     statusText(statusCode),
			"statusCode": statusCode,
			"message":    serviceErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"status":  "error",
		"message": genericErrorMessage,
	})
}

// StatusFor maps a service error code to its HTTP status.
func StatusFor(code common.ErrorCode) int {
	switch code {
	case common.ErrorCodeValidation:
		return http.StatusBadRequest
	case common.ErrorCodeAuth, common.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case common.ErrorCodeForbidden:
		return http.StatusForbidden
	case common.ErrorCodeConflict:
		return http.StatusConflict
	case common.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func statusText(statusCode int) string {
	if statusCode >= 400 && statusCode < 500 {
		return "fail"
	}
	return "error"
}
