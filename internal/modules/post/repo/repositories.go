package repo

import (
	"context"

	"social-spectrum-server/internal/model"
	moduledto "social-spectrum-server/internal/modules/post/dto"

	"gorm.io/gorm"
)

type PostStore interface {
	HomeFeed(ctx context.Context, viewerID uint, limit int) ([]moduledto.FeedPost, error)
	UserFeed(ctx context.Context, viewerID, authorID uint, limit int) ([]moduledto.FeedPost, error)
	SavedFeed(ctx context.Context, viewerID uint, limit int) ([]moduledto.FeedPost, error)
	Create(ctx context.Context, post *model.Post) error
	Exists(ctx context.Context, id uint) (bool, error)
	DeleteOwned(ctx context.Context, id, callerID uint, isAdmin bool, beforeCommit func(deleted *model.Post) error) error
}

type SavedPostStore interface {
	Create(ctx context.Context, saved *model.SavedPost) error
	Delete(ctx context.Context, userID, postID uint) error
}

func NewPostRepository(db *gorm.DB) PostStore {
	return &PostRepository{db: db}
}

func NewSavedPostRepository(db *gorm.DB) SavedPostStore {
	return &SavedPostRepository{db: db}
}
