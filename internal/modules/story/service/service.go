package service

import (
	"social-spectrum-server/internal/modules/story/repo"
	platformservice "social-spectrum-server/internal/platform/service"
)

const storiesLimit = 100

type Service struct {
	*platformservice.AppService
	storyStore repo.StoryStore
}

func New(appService *platformservice.AppService, storyStore repo.StoryStore) *Service {
	return &Service{
		AppService: appService,
		storyStore: storyStore,
	}
}
