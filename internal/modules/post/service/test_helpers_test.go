package service

import (
	"testing"

	"social-spectrum-server/internal/config"
	postrepo "social-spectrum-server/internal/modules/post/repo"
	userrepo "social-spectrum-server/internal/modules/user/repo"
	platformservice "social-spectrum-server/internal/platform/service"
	"social-spectrum-server/internal/testutils"

	"gorm.io/gorm"
)

const testAdminEmail = "admin@example.com"

func setupTestService(t *testing.T) (*gorm.DB, *Service, *testutils.MemoryBlobStore) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	cfg := &config.Config{
		Admin:  config.AdminConfig{Email: testAdminEmail},
		Limits: config.LimitsConfig{UploadMB: 1},
	}
	blobs := testutils.NewMemoryBlobStore()
	appService := platformservice.NewAppService(cfg, userrepo.NewUserRepository(gdb), nil, blobs)
	svc := New(appService, postrepo.NewPostRepository(gdb), postrepo.NewSavedPostRepository(gdb))
	return gdb, svc, blobs
}
