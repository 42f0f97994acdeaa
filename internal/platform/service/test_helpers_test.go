package service

import (
	"context"
	"testing"

	"social-spectrum-server/internal/config"
	"social-spectrum-server/internal/testutils"

	"gorm.io/gorm"
)

type fakeAdminLookup struct {
	ids   map[string]uint
	calls int
}

func (f *fakeAdminLookup) FindIDByEmail(_ context.Context, email string) (uint, error) {
	f.calls++
	if id, ok := f.ids[email]; ok {
		return id, nil
	}
	return 0, gorm.ErrRecordNotFound
}

func testConfig() *config.Config {
	return &config.Config{
		Admin:  config.AdminConfig{Email: "admin@example.com"},
		Redis:  config.RedisConfig{Prefix: "sst"},
		Limits: config.LimitsConfig{UploadMB: 1},
	}
}

func newTestAppService(t *testing.T, lookup AdminLookup) (*AppService, *testutils.MemoryBlobStore) {
	t.Helper()
	blobs := testutils.NewMemoryBlobStore()
	return NewAppService(testConfig(), lookup, nil, blobs), blobs
}
