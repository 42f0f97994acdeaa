package repo

import (
	"context"

	"social-spectrum-server/internal/model"
	moduledto "social-spectrum-server/internal/modules/comment/dto"

	"gorm.io/gorm"
)

type CommentStore interface {
	LatestForPost(ctx context.Context, postID uint, limit int) ([]moduledto.CommentView, error)
	PostExists(ctx context.Context, postID uint) (bool, error)
	Create(ctx context.Context, comment *model.Comment) error
	DeleteOwned(ctx context.Context, id, callerID uint, isAdmin bool) error
}

func NewCommentRepository(db *gorm.DB) CommentStore {
	return &CommentRepository{db: db}
}
