package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"social-spectrum-server/internal/common/httpx"
	"social-spectrum-server/internal/config"
	"social-spectrum-server/internal/security"

	"github.com/gin-gonic/gin"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Mode: "test", FrontendOrigin: "http://localhost:5173"},
		JWT:    config.JWTConfig{Secret: "middleware-secret", ExpirationHours: 1},
		Cookie: config.CookieConfig{ExpiresDays: 1},
		Limits: config.LimitsConfig{JSONBodyKB: 1, UploadMB: 1, RequestsPerHour: 1000},
	}
}

func newTestEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cookies := httpx.NewSessionCookie(false, cfg.Cookie.ExpiresDays)
	r.Use(httpx.NewErrorTranslator(cfg.IsProduction(), cookies).Middleware())
	return r
}

func newTokens(cfg *config.Config) *security.TokenService {
	return security.NewTokenService(cfg)
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func requestFrom(t *testing.T, method, target, ip string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = ip + ":1111"
	return req
}
