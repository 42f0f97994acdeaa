package service

import (
	"testing"

	"social-spectrum-server/internal/config"
	userrepo "social-spectrum-server/internal/modules/user/repo"
	userservice "social-spectrum-server/internal/modules/user/service"
	platformservice "social-spectrum-server/internal/platform/service"
	"social-spectrum-server/internal/security"
	"social-spectrum-server/internal/testutils"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT:   config.JWTConfig{Secret: "auth-test-secret", ExpirationHours: 1},
		Admin: config.AdminConfig{Email: "admin@example.com"},
		Redis: config.RedisConfig{Prefix: "sst"},
	}
}

func setupTestService(t *testing.T) (*gorm.DB, *Service) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	cfg := testConfig()
	userStore := userrepo.NewUserRepository(gdb)
	appService := platformservice.NewAppService(cfg, userStore, nil, testutils.NewMemoryBlobStore())
	userSvc := userservice.New(appService, userStore)
	return gdb, New(appService, userSvc, security.NewTokenService(cfg))
}

// setupTestServiceWithRedis backs the admin id cache with miniredis.
func setupTestServiceWithRedis(t *testing.T) (*gorm.DB, *Service, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	gdb := testutils.SetupDB(t)
	cfg := testConfig()
	userStore := userrepo.NewUserRepository(gdb)
	appService := platformservice.NewAppService(cfg, userStore, client, testutils.NewMemoryBlobStore())
	userSvc := userservice.New(appService, userStore)
	return gdb, New(appService, userSvc, security.NewTokenService(cfg)), mr
}
