package service

import (
	"social-spectrum-server/internal/modules/post/repo"
	platformservice "social-spectrum-server/internal/platform/service"
)

const feedLimit = 200

type Service struct {
	*platformservice.AppService
	postStore  repo.PostStore
	savedStore repo.SavedPostStore
}

func New(appService *platformservice.AppService, postStore repo.PostStore, savedStore repo.SavedPostStore) *Service {
	return &Service{
		AppService: appService,
		postStore:  postStore,
		savedStore: savedStore,
	}
}
