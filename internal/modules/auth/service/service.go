package service

import (
	"context"

	"social-spectrum-server/internal/model"
	platformservice "social-spectrum-server/internal/platform/service"
	"social-spectrum-server/internal/security"
)

type UserService interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *model.User) error
}

type Service struct {
	*platformservice.AppService
	userService UserService
	tokens      *security.TokenService
}

func New(appService *platformservice.AppService, userService UserService, tokens *security.TokenService) *Service {
	return &Service{
		AppService:  appService,
		userService: userService,
		tokens:      tokens,
	}
}
