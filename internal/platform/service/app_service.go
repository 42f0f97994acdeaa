package service

import (
	"context"

	"social-spectrum-server/internal/config"
	"social-spectrum-server/internal/storage"

	"github.com/redis/go-redis/v9"
)

// AdminLookup resolves a user id by email. It returns gorm.ErrRecordNotFound
// when no such user exists.
type AdminLookup interface {
	FindIDByEmail(ctx context.Context, email string) (uint, error)
}

// AppService carries the collaborators every module service shares:
// immutable config, blob storage, the admin identity and the optional redis cache.
type AppService struct {
	cfg         *config.Config
	adminLookup AdminLookup
	redis       *redis.Client
	blobs       storage.BlobStore
}

func NewAppService(cfg *config.Config, adminLookup AdminLookup, redisClient *redis.Client, blobs storage.BlobStore) *AppService {
	return &AppService{
		cfg:         cfg,
		adminLookup: adminLookup,
		redis:       redisClient,
		blobs:       blobs,
	}
}

func (s *AppService) Config() *config.Config {
	return s.cfg
}

func (s *AppService) Blobs() storage.BlobStore {
	return s.blobs
}
