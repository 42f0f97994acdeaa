package repo

import (
	"context"

	"social-spectrum-server/internal/model"

	"gorm.io/gorm"
)

type SavedPostRepository struct {
	db *gorm.DB
}

func (r *SavedPostRepository) Create(ctx context.Context, saved *model.SavedPost) error {
	return r.db.WithContext(ctx).Create(saved).Error
}

func (r *SavedPostRepository) Delete(ctx context.Context, userID, postID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND saved_post_id = ?", userID, postID).
		Delete(&model.SavedPost{}).Error
}
