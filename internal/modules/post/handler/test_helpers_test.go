package handler

import (
	"testing"

	"social-spectrum-server/internal/config"
	postrepo "social-spectrum-server/internal/modules/post/repo"
	postservice "social-spectrum-server/internal/modules/post/service"
	userrepo "social-spectrum-server/internal/modules/user/repo"
	platformservice "social-spectrum-server/internal/platform/service"
	"social-spectrum-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	cfg := &config.Config{Limits: config.LimitsConfig{UploadMB: 1}}
	appService := platformservice.NewAppService(cfg, userrepo.NewUserRepository(gdb), nil, testutils.NewMemoryBlobStore())
	h := New(postservice.New(appService, postrepo.NewPostRepository(gdb), postrepo.NewSavedPostRepository(gdb)))

	r := testutils.NewEngine()
	r.GET("/posts", h.GetPosts)
	r.POST("/posts", h.AddPost)
	r.GET("/posts/saved", h.GetSavedPosts)
	r.POST("/posts/saved", h.SavePost)
	r.DELETE("/posts/saved/:postId", h.UnsavePost)
	r.GET("/posts/:userId", h.GetUserPosts)
	r.DELETE("/posts/:postId", h.DeletePost)
	return gdb, r
}
