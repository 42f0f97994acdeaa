package service

import (
	"context"
	"errors"
	"log/slog"

	"social-spectrum-server/internal/common"
	"social-spectrum-server/internal/db"
	"social-spectrum-server/internal/model"
	moduledto "social-spectrum-server/internal/modules/post/dto"
	"social-spectrum-server/internal/storage"

	"gorm.io/gorm"
)

// HomeFeed returns the newest posts of the viewer and the users they follow.
func (s *Service) HomeFeed(ctx context.Context, viewerID uint) ([]moduledto.FeedPost, error) {
	posts, err := s.postStore.HomeFeed(ctx, viewerID, feedLimit)
	if err != nil {
		return nil, common.WrapInternal(err, "load home feed")
	}
	return posts, nil
}

func (s *Service) UserFeed(ctx context.Context, viewerID, authorID uint) ([]moduledto.FeedPost, error) {
	posts, err := s.postStore.UserFeed(ctx, viewerID, authorID, feedLimit)
	if err != nil {
		return nil, common.WrapInternal(err, "load user feed")
	}
	return posts, nil
}

func (s *Service) AddPost(ctx context.Context, userID uint, req moduledto.AddPostRequest) (*model.Post, error) {
	if req.TextContent == "" {
		return nil, common.NewValidationError("Post cannot be empty")
	}

	post := &model.Post{UserID: userID, TextContent: req.TextContent}
	if req.Image != nil {
		stored, err := s.StoreImage(ctx, storage.BucketPostImages, req.Image, true)
		if err != nil {
			return nil, err
		}
		post.Image = &stored.URL
		post.BlurhashString = stored.Blurhash
	}

	if err := s.postStore.Create(ctx, post); err != nil {
		if post.Image != nil {
			if rmErr := s.RemoveImage(context.WithoutCancel(ctx), storage.BucketPostImages, *post.Image, ""); rmErr != nil {
				slog.Warn("remove orphaned post image failed", "url", *post.Image, "error", rmErr)
			}
		}
		if db.IsForeignKeyViolation(err) {
			return nil, common.NewAuthError()
		}
		return nil, common.WrapInternal(err, "create post")
	}
	return post, nil
}

// DeletePost removes a post and its image. Only the owner or the admin may.
func (s *Service) DeletePost(ctx context.Context, callerID, postID uint) error {
	isAdmin, err := s.IsAdmin(ctx, callerID)
	if err != nil {
		return err
	}

	err = s.postStore.DeleteOwned(ctx, postID, callerID, isAdmin, func(deleted *model.Post) error {
		if deleted.Image == nil {
			return nil
		}
		return s.RemoveImage(ctx, storage.BucketPostImages, *deleted.Image, "Something went wrong deleting post image")
	})
	if err == nil {
		return nil
	}
	if _, ok := common.AsServiceError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return common.NewNotFoundError("Post not found")
	case errors.Is(err, db.ErrNotOwner):
		return common.NewForbiddenError("Only post owners or admins are allowed to delete posts")
	default:
		return common.WrapInternal(err, "delete post")
	}
}
