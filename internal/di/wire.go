//go:build wireinject
// +build wireinject

package di

import (
	"social-spectrum-server/internal/config"
	"social-spectrum-server/internal/modules"
	commentrepo "social-spectrum-server/internal/modules/comment/repo"
	likerepo "social-spectrum-server/internal/modules/like/repo"
	postrepo "social-spectrum-server/internal/modules/post/repo"
	relationshiprepo "social-spectrum-server/internal/modules/relationship/repo"
	searchrepo "social-spectrum-server/internal/modules/search/repo"
	storyrepo "social-spectrum-server/internal/modules/story/repo"
	userrepo "social-spectrum-server/internal/modules/user/repo"
	"social-spectrum-server/internal/platform/service"
	"social-spectrum-server/internal/router"
	"social-spectrum-server/internal/security"
	"social-spectrum-server/internal/storage"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func InitializeApplication(cfg *config.Config, gormDB *gorm.DB, redisClient *redis.Client, blobs storage.BlobStore) (*Application, error) {
	wire.Build(
		userrepo.NewUserRepository,
		postrepo.NewPostRepository,
		postrepo.NewSavedPostRepository,
		commentrepo.NewCommentRepository,
		likerepo.NewLikeRepository,
		relationshiprepo.NewRelationshipRepository,
		storyrepo.NewStoryRepository,
		searchrepo.NewSearchRepository,
		wire.Struct(new(modules.Stores), "*"),
		ProvideAdminLookup,
		ProvideSessionCookie,
		security.NewTokenService,
		service.NewAppService,
		modules.New,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
