package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"social-spectrum-server/internal/common"
	"social-spectrum-server/internal/common/httpx"

	"github.com/gin-gonic/gin"
)

// CallerHeader carries the caller id in handler tests.
const CallerHeader = "X-Test-Caller"

// NewEngine returns a gin engine with the production error translator and a
// middleware that authenticates the id sent in CallerHeader.
func NewEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httpx.NewErrorTranslator(true, httpx.NewSessionCookie(false, 1)).Middleware())
	r.Use(func(c *gin.Context) {
		if raw := c.GetHeader(CallerHeader); raw != "" {
			if id, err := strconv.ParseUint(raw, 10, 64); err == nil {
				httpx.SetUserID(c, uint(id))
			}
		}
		c.Next()
	})
	return r
}

// Do serves req as callerID (0 means anonymous).
func Do(r http.Handler, req *http.Request, callerID uint) *httptest.ResponseRecorder {
	if callerID != 0 {
		req.Header.Set(CallerHeader, strconv.FormatUint(uint64(callerID), 10))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// JSONRequest builds a request with body encoded as JSON.
func JSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// DecodeJSON unmarshals the recorder body into dest.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
}

// RequireCode fails the test unless err is a ServiceError with code.
func RequireCode(t *testing.T, err error, code common.ErrorCode) *common.ServiceError {
	t.Helper()
	serviceErr, ok := common.AsServiceError(err)
	if !ok {
		t.Fatalf("expected service error %s, got %v", code, err)
	}
	if serviceErr.Code != code {
		t.Fatalf("expected code %s, got %s (%s)", code, serviceErr.Code, serviceErr.Message)
	}
	return serviceErr
}
