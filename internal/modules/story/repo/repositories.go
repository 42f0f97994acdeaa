package repo

import (
	"context"

	"social-spectrum-server/internal/model"
	moduledto "social-spectrum-server/internal/modules/story/dto"

	"gorm.io/gorm"
)

type StoryStore interface {
	// Visible returns stories of viewerID and of the users they follow.
	Visible(ctx context.Context, viewerID uint, limit int) ([]moduledto.StoryView, error)
	ByUser(ctx context.Context, userID uint, limit int) ([]moduledto.StoryView, error)
	Create(ctx context.Context, story *model.Story) error
	DeleteOwned(ctx context.Context, id, callerID uint, isAdmin bool, beforeCommit func(deleted *model.Story) error) error
}

func NewStoryRepository(db *gorm.DB) StoryStore {
	return &StoryRepository{db: db}
}
