package handler

import (
	"testing"

	"social-spectrum-server/internal/common/httpx"
	"social-spectrum-server/internal/config"
	userrepo "social-spectrum-server/internal/modules/user/repo"
	userservice "social-spectrum-server/internal/modules/user/service"
	platformservice "social-spectrum-server/internal/platform/service"
	"social-spectrum-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) (*gorm.DB, *gin.Engine, *testutils.MemoryBlobStore) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	cfg := &config.Config{
		Admin:  config.AdminConfig{Email: "root@example.com"},
		Limits: config.LimitsConfig{UploadMB: 1},
	}
	userStore := userrepo.NewUserRepository(gdb)
	blobs := testutils.NewMemoryBlobStore()
	appService := platformservice.NewAppService(cfg, userStore, nil, blobs)
	h := New(userservice.New(appService, userStore), httpx.NewSessionCookie(false, 1))

	r := testutils.NewEngine()
	r.GET("/users/suggested", h.SuggestedUsers)
	r.GET("/users/online", h.OnlineFriends)
	r.GET("/users/:userId", h.GetUser)
	r.PATCH("/users", h.UpdateProfile)
	r.PATCH("/users/password-update", h.UpdatePassword)
	r.PATCH("/users/:userId/status", h.UpdateVisibility)
	r.POST("/users/password-check", h.CheckPassword)
	r.DELETE("/users/:userId", h.DeleteAccount)
	return gdb, r, blobs
}
