package service

import (
	"context"

	"social-spectrum-server/internal/common"
	"social-spectrum-server/internal/db"
	"social-spectrum-server/internal/model"
	moduledto "social-spectrum-server/internal/modules/post/dto"
)

// SavedFeed lists the viewer's bookmarks, oldest bookmark first.
func (s *Service) SavedFeed(ctx context.Context, viewerID uint) ([]moduledto.FeedPost, error) {
	posts, err := s.postStore.SavedFeed(ctx, viewerID, feedLimit)
	if err != nil {
		return nil, common.WrapInternal(err, "load saved posts")
	}
	return posts, nil
}

func (s *Service) SavePost(ctx context.Context, userID, postID uint) error {
	if postID == 0 {
		return common.NewValidationError("Expected postId to be specified in the POST request body")
	}

	exists, err := s.postStore.Exists(ctx, postID)
	if err != nil {
		return common.WrapInternal(err, "check post")
	}
	if !exists {
		return common.NewNotFoundError("Post not found")
	}

	err = s.savedStore.Create(ctx, &model.SavedPost{UserID: userID, SavedPostID: postID})
	switch {
	case err == nil:
		return nil
	case db.IsDuplicateKey(err):
		return common.NewConflictError("Post is already bookmarked")
	case db.IsForeignKeyViolation(err):
		return common.NewNotFoundError("Post not found")
	default:
		return common.WrapInternal(err, "bookmark post")
	}
}

// UnsavePost is idempotent.
func (s *Service) UnsavePost(ctx context.Context, userID, postID uint) error {
	if err := s.savedStore.Delete(ctx, userID, postID); err != nil {
		return common.WrapInternal(err, "remove bookmark")
	}
	return nil
}
