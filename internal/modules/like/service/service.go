package service

import (
	"context"

	"social-spectrum-server/internal/common"
	"social-spectrum-server/internal/db"
	"social-spectrum-server/internal/model"
	"social-spectrum-server/internal/modules/like/repo"
	platformservice "social-spectrum-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	likeStore repo.LikeStore
}

func New(appService *platformservice.AppService, likeStore repo.LikeStore) *Service {
	return &Service{
		AppService: appService,
		likeStore:  likeStore,
	}
}

// Like records one like per user and post.
func (s *Service) Like(ctx context.Context, userID, postID uint) error {
	if postID == 0 {
		return common.NewValidationError("Post id is missing in body")
	}

	exists, err := s.likeStore.PostExists(ctx, postID)
	if err != nil {
		return common.WrapInternal(err, "check post")
	}
	if !exists {
		return common.NewNotFoundError("Post not found")
	}

	err = s.likeStore.Create(ctx, &model.Like{LikeUserID: userID, LikePostID: postID})
	switch {
	case err == nil:
		return nil
	case db.IsDuplicateKey(err):
		return common.NewConflictError("Post already liked")
	case db.IsForeignKeyViolation(err):
		return common.NewNotFoundError("Post not found")
	default:
		return common.WrapInternal(err, "like post")
	}
}

// Unlike is idempotent.
func (s *Service) Unlike(ctx context.Context, userID, postID uint) error {
	if err := s.likeStore.Delete(ctx, userID, postID); err != nil {
		return common.WrapInternal(err, "unlike post")
	}
	return nil
}
