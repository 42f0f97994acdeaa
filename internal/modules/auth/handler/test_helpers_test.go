package handler

import (
	"testing"

	"social-spectrum-server/internal/common/httpx"
	"social-spectrum-server/internal/config"
	authservice "social-spectrum-server/internal/modules/auth/service"
	userrepo "social-spectrum-server/internal/modules/user/repo"
	userservice "social-spectrum-server/internal/modules/user/service"
	platformservice "social-spectrum-server/internal/platform/service"
	"social-spectrum-server/internal/security"
	"social-spectrum-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *security.TokenService) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "auth-handler-secret", ExpirationHours: 1}}
	userStore := userrepo.NewUserRepository(gdb)
	appService := platformservice.NewAppService(cfg, userStore, nil, testutils.NewMemoryBlobStore())
	tokens := security.NewTokenService(cfg)
	h := New(authservice.New(appService, userservice.New(appService, userStore), tokens), httpx.NewSessionCookie(false, 1))

	r := testutils.NewEngine()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/logout", h.Logout)
	return r, tokens
}
