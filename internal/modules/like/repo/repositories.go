package repo

import (
	"context"

	"social-spectrum-server/internal/model"

	"gorm.io/gorm"
)

type LikeStore interface {
	PostExists(ctx context.Context, postID uint) (bool, error)
	Create(ctx context.Context, like *model.Like) error
	Delete(ctx context.Context, userID, postID uint) error
}

func NewLikeRepository(db *gorm.DB) LikeStore {
	return &LikeRepository{db: db}
}
