package service

import (
	"testing"

	"social-spectrum-server/internal/config"
	modulerepo "social-spectrum-server/internal/modules/user/repo"
	platformservice "social-spectrum-server/internal/platform/service"
	"social-spectrum-server/internal/testutils"

	"gorm.io/gorm"
)

const testAdminEmail = "boss@example.com"

func testConfig() *config.Config {
	return &config.Config{
		Admin:  config.AdminConfig{Email: testAdminEmail},
		Limits: config.LimitsConfig{UploadMB: 1},
	}
}

func setupTestService(t *testing.T) (*gorm.DB, *Service, *testutils.MemoryBlobStore) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	userStore := modulerepo.NewUserRepository(gdb)
	blobs := testutils.NewMemoryBlobStore()
	appService := platformservice.NewAppService(testConfig(), userStore, nil, blobs)
	return gdb, New(appService, userStore), blobs
}

func strPtr(s string) *string {
	return &s
}
