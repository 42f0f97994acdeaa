package service

import (
	"social-spectrum-server/internal/modules/comment/repo"
	platformservice "social-spectrum-server/internal/platform/service"
)

const latestCommentsLimit = 10

type Service struct {
	*platformservice.AppService
	commentStore repo.CommentStore
}

func New(appService *platformservice.AppService, commentStore repo.CommentStore) *Service {
	return &Service{
		AppService:   appService,
		commentStore: commentStore,
	}
}
