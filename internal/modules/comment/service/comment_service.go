package service

import (
	"context"
	"errors"
	"strings"

	"social-spectrum-server/internal/common"
	"social-spectrum-server/internal/db"
	"social-spectrum-server/internal/model"
	moduledto "social-spectrum-server/internal/modules/comment/dto"

	"gorm.io/gorm"
)

// LatestComments returns the newest comments of a post with author details.
func (s *Service) LatestComments(ctx context.Context, postID uint) ([]moduledto.CommentView, error) {
	comments, err := s.commentStore.LatestForPost(ctx, postID, latestCommentsLimit)
	if err != nil {
		return nil, common.WrapInternal(err, "list comments")
	}
	return comments, nil
}

func (s *Service) AddComment(ctx context.Context, userID uint, req moduledto.AddCommentRequest) (*model.Comment, error) {
	text := strings.TrimSpace(req.TextContent)
	if text == "" || req.PostID == 0 {
		return nil, common.NewValidationError("Comment text and post id are required")
	}

	exists, err := s.commentStore.PostExists(ctx, req.PostID.Uint())
	if err != nil {
		return nil, common.WrapInternal(err, "check post")
	}
	if !exists {
		return nil, common.NewNotFoundError("Post not found")
	}

	comment := &model.Comment{
		TextContent:   req.TextContent,
		CommentUserID: userID,
		PostID:        req.PostID.Uint(),
	}
	if err := s.commentStore.Create(ctx, comment); err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, common.NewNotFoundError("Post not found")
		}
		return nil, common.WrapInternal(err, "create comment")
	}
	return comment, nil
}

func (s *Service) DeleteComment(ctx context.Context, callerID, commentID uint) error {
	isAdmin, err := s.IsAdmin(ctx, callerID)
	if err != nil {
		return err
	}

	err = s.commentStore.DeleteOwned(ctx, commentID, callerID, isAdmin)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return common.NewNotFoundError("Comment not found")
	case errors.Is(err, db.ErrNotOwner):
		return common.NewForbiddenError("Only comment owners or admins are allowed to delete comments")
	default:
		return common.WrapInternal(err, "delete comment")
	}
}
