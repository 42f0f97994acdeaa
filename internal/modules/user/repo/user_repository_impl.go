package repo

import (
	"context"

	"social-spectrum-server/internal/db"
	"social-spectrum-server/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindIDByEmail(ctx context.Context, email string) (uint, error) {
	var user model.User
	err := r.db.WithContext(ctx).Select("id").Where("email = ?", email).First(&user).Error
	if err != nil {
		return 0, err
	}
	return user.ID, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id uint, update ProfileUpdate, afterUpdate func(previous *model.User) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var previous model.User
		if err := tx.First(&previous, id).Error; err != nil {
			return err
		}

		columns := map[string]interface{}{
			"name":        update.Name,
			"username":    update.Username,
			"email":       update.Email,
			"country":     update.Country,
			"status_text": update.StatusText,
			"languages":   update.Languages,
		}
		if update.ProfilePicture != nil {
			columns["profile_picture"] = *update.ProfilePicture
		}
		if update.BgPicture != nil {
			columns["bg_picture"] = *update.BgPicture
		}
		if err := tx.Model(&model.User{}).Where("id = ?", id).Updates(columns).Error; err != nil {
			return err
		}

		if afterUpdate != nil {
			return afterUpdate(&previous)
		}
		return nil
	})
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uint, hashedPassword string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("password", hashedPassword).Error
}

func (r *UserRepository) UpdateVisibility(ctx context.Context, id uint, visibility model.Visibility) error {
	return r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("visibility", visibility).Error
}

func (r *UserRepository) DeleteOwned(ctx context.Context, id, callerID uint, isAdmin bool, beforeCommit func(deleted *model.User) error) error {
	var user model.User
	return db.DeleteOwned(ctx, r.db, &user, db.OwnedDelete{
		ID:          id,
		OwnerColumn: "id",
		CallerID:    callerID,
		IsAdmin:     isAdmin,
		BeforeCommit: func() error {
			if beforeCommit == nil {
				return nil
			}
			return beforeCommit(&user)
		},
	})
}

// Suggested returns users the caller does not follow yet, excluding the caller.
func (r *UserRepository) Suggested(ctx context.Context, userID uint, limit int) ([]model.User, error) {
	followed := r.db.Model(&model.UserRelationship{}).
		Select("is_followed_id").
		Where("is_following_id = ?", userID)

	var users []model.User
	err := r.db.WithContext(ctx).
		Where("id <> ?", userID).
		Where("id NOT IN (?)", followed).
		Order("id DESC").
		Limit(limit).
		Find(&users).Error
	return users, err
}

// OnlineFriends returns followed users whose visibility is online.
func (r *UserRepository) OnlineFriends(ctx context.Context, userID uint, limit int) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Joins("JOIN user_relationships ON user_relationships.is_followed_id = users.id").
		Where("user_relationships.is_following_id = ?", userID).
		Where("users.visibility = ?", model.VisibilityOnline).
		Order("users.id ASC").
		Limit(limit).
		Find(&users).Error
	return users, err
}
