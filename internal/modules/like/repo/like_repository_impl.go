package repo

import (
	"context"

	"social-spectrum-server/internal/model"

	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func (r *LikeRepository) PostExists(ctx context.Context, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", postID).Count(&count).Error
	return count > 0, err
}

func (r *LikeRepository) Create(ctx context.Context, like *model.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *LikeRepository) Delete(ctx context.Context, userID, postID uint) error {
	return r.db.WithContext(ctx).
		Where("like_user_id = ? AND like_post_id = ?", userID, postID).
		Delete(&model.Like{}).Error
}
