package repo

import (
	"context"

	"social-spectrum-server/internal/db"
	"social-spectrum-server/internal/model"
	moduledto "social-spectrum-server/internal/modules/comment/dto"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func (r *CommentRepository) LatestForPost(ctx context.Context, postID uint, limit int) ([]moduledto.CommentView, error) {
	comments := make([]moduledto.CommentView, 0)
	err := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Select("comments.id, comments.text_content, comments.comment_user_id, comments.post_id, comments.created_at, "+
			"users.name, users.profile_picture, users.id AS user_id").
		Joins("INNER JOIN users ON users.id = comments.comment_user_id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at DESC").
		Order("comments.id DESC").
		Limit(limit).
		Scan(&comments).Error
	return comments, err
}

func (r *CommentRepository) PostExists(ctx context.Context, postID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", postID).Count(&count).Error
	return count > 0, err
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *CommentRepository) DeleteOwned(ctx context.Context, id, callerID uint, isAdmin bool) error {
	return db.DeleteOwned(ctx, r.db, &model.Comment{}, db.OwnedDelete{
		ID:          id,
		OwnerColumn: "comment_user_id",
		CallerID:    callerID,
		IsAdmin:     isAdmin,
	})
}
