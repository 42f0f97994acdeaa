package repo

import (
	"context"

	"social-spectrum-server/internal/model"
	moduledto "social-spectrum-server/internal/modules/relationship/dto"

	"gorm.io/gorm"
)

type RelationshipRepository struct {
	db *gorm.DB
}

func (r *RelationshipRepository) Followers(ctx context.Context, userID uint) ([]moduledto.Follower, error) {
	followers := make([]moduledto.Follower, 0)
	err := r.db.WithContext(ctx).
		Model(&model.UserRelationship{}).
		Select("is_following_id").
		Where("is_followed_id = ?", userID).
		Order("id ASC").
		Scan(&followers).Error
	return followers, err
}

func (r *RelationshipRepository) FollowedUsers(ctx context.Context, userID uint) ([]moduledto.FollowedUser, error) {
	users := make([]moduledto.FollowedUser, 0)
	err := r.db.WithContext(ctx).
		Model(&model.UserRelationship{}).
		Select("users.id, users.name, users.profile_picture, users.role, users.status_text, users.username, users.visibility").
		Joins("INNER JOIN users ON users.id = user_relationships.is_followed_id").
		Where("user_relationships.is_following_id = ?", userID).
		Order("user_relationships.id ASC").
		Scan(&users).Error
	return users, err
}

func (r *RelationshipRepository) UserExists(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *RelationshipRepository) Create(ctx context.Context, rel *model.UserRelationship) error {
	return r.db.WithContext(ctx).Create(rel).Error
}

func (r *RelationshipRepository) Delete(ctx context.Context, followerID, followedID uint) error {
	return r.db.WithContext(ctx).
		Where("is_following_id = ? AND is_followed_id = ?", followerID, followedID).
		Delete(&model.UserRelationship{}).Error
}
