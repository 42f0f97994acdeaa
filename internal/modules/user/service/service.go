package service

import (
	"social-spectrum-server/internal/modules/user/repo"
	platformservice "social-spectrum-server/internal/platform/service"
)

const (
	suggestedUsersLimit = 5
	onlineFriendsLimit  = 10
)

type Service struct {
	*platformservice.AppService
	userStore repo.UserStore
}

func New(appService *platformservice.AppService, userStore repo.UserStore) *Service {
	return &Service{
		AppService: appService,
		userStore:  userStore,
	}
}
