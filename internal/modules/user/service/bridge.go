package service

import (
	"context"

	"social-spectrum-server/internal/model"
)

// FindByEmail exposes the user lookup used by login.
func (s *Service) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.userStore.FindByEmail(ctx, email)
}

func (s *Service) EmailTaken(ctx context.Context, email string) (bool, error) {
	return s.userStore.ExistsByEmail(ctx, email)
}

func (s *Service) Create(ctx context.Context, user *model.User) error {
	return s.userStore.Create(ctx, user)
}
