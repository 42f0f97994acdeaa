package repo

import (
	"context"

	"social-spectrum-server/internal/db"
	"social-spectrum-server/internal/model"
	moduledto "social-spectrum-server/internal/modules/story/dto"

	"gorm.io/gorm"
)

const storyColumns = "stories.id, stories.story_user_id, stories.image_url, stories.blurhash_string, stories.created_at, " +
	"users.name, users.profile_picture"

type StoryRepository struct {
	db *gorm.DB
}

func (r *StoryRepository) baseQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&model.Story{}).
		Select(storyColumns).
		Joins("INNER JOIN users ON users.id = stories.story_user_id")
}

func (r *StoryRepository) Visible(ctx context.Context, viewerID uint, limit int) ([]moduledto.StoryView, error) {
	followed := r.db.Model(&model.UserRelationship{}).
		Select("is_followed_id").
		Where("is_following_id = ?", viewerID)

	stories := make([]moduledto.StoryView, 0)
	err := r.baseQuery(ctx).
		Where("stories.story_user_id = ? OR stories.story_user_id IN (?)", viewerID, followed).
		Order("stories.created_at DESC").
		Order("stories.id DESC").
		Limit(limit).
		Scan(&stories).Error
	return stories, err
}

func (r *StoryRepository) ByUser(ctx context.Context, userID uint, limit int) ([]moduledto.StoryView, error) {
	stories := make([]moduledto.StoryView, 0)
	err := r.baseQuery(ctx).
		Where("stories.story_user_id = ?", userID).
		Order("stories.created_at DESC").
		Order("stories.id DESC").
		Limit(limit).
		Scan(&stories).Error
	return stories, err
}

func (r *StoryRepository) Create(ctx context.Context, story *model.Story) error {
	return r.db.WithContext(ctx).Create(story).Error
}

func (r *StoryRepository) DeleteOwned(ctx context.Context, id, callerID uint, isAdmin bool, beforeCommit func(deleted *model.Story) error) error {
	var story model.Story
	return db.DeleteOwned(ctx, r.db, &story, db.OwnedDelete{
		ID:          id,
		OwnerColumn: "story_user_id",
		CallerID:    callerID,
		IsAdmin:     isAdmin,
		BeforeCommit: func() error {
			if beforeCommit == nil {
				return nil
			}
			return beforeCommit(&story)
		},
	})
}
