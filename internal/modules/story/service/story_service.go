package service

import (
	"context"
	"errors"
	"log/slog"

	"social-spectrum-server/internal/common"
	"social-spectrum-server/internal/db"
	"social-spectrum-server/internal/model"
	moduledto "social-spectrum-server/internal/modules/story/dto"
	"social-spectrum-server/internal/storage"

	"gorm.io/gorm"
)

func (s *Service) VisibleStories(ctx context.Context, viewerID uint) ([]moduledto.StoryView, error) {
	stories, err := s.storyStore.Visible(ctx, viewerID, storiesLimit)
	if err != nil {
		return nil, common.WrapInternal(err, "list stories")
	}
	return stories, nil
}

func (s *Service) UserStories(ctx context.Context, userID uint) ([]moduledto.StoryView, error) {
	stories, err := s.storyStore.ByUser(ctx, userID, storiesLimit)
	if err != nil {
		return nil, common.WrapInternal(err, "list user stories")
	}
	return stories, nil
}

// AddStory stores a story. The image is optional; without one the story has
// no blurhash either.
func (s *Service) AddStory(ctx context.Context, userID uint, req moduledto.AddStoryRequest) (*model.Story, error) {
	story := &model.Story{StoryUserID: userID}
	if req.Image != nil {
		stored, err := s.StoreImage(ctx, storage.BucketStories, req.Image, true)
		if err != nil {
			return nil, err
		}
		story.ImageURL = &stored.URL
		story.BlurhashString = stored.Blurhash
	}

	if err := s.storyStore.Create(ctx, story); err != nil {
		if story.ImageURL != nil {
			if rmErr := s.RemoveImage(context.WithoutCancel(ctx), storage.BucketStories, *story.ImageURL, ""); rmErr != nil {
				slog.Warn("remove orphaned story image failed", "url", *story.ImageURL, "error", rmErr)
			}
		}
		if db.IsForeignKeyViolation(err) {
			return nil, common.NewAuthError()
		}
		return nil, common.WrapInternal(err, "create story")
	}
	return story, nil
}

func (s *Service) DeleteStory(ctx context.Context, callerID, storyID uint) error {
	isAdmin, err := s.IsAdmin(ctx, callerID)
	if err != nil {
		return err
	}

	err = s.storyStore.DeleteOwned(ctx, storyID, callerID, isAdmin, func(deleted *model.Story) error {
		if deleted.ImageURL == nil {
			return nil
		}
		return s.RemoveImage(ctx, storage.BucketStories, *deleted.ImageURL, "Something went wrong while deleting story. Try again later")
	})
	if err == nil {
		return nil
	}
	if _, ok := common.AsServiceError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return common.NewNotFoundError("Story not found")
	case errors.Is(err, db.ErrNotOwner):
		return common.NewForbiddenError("Only story owners or admins are allowed to delete stories")
	default:
		return common.WrapInternal(err, "delete story")
	}
}
