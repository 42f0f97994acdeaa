package service

import (
	"context"

	"social-spectrum-server/internal/common"
	"social-spectrum-server/internal/db"
	"social-spectrum-server/internal/model"
	moduledto "social-spectrum-server/internal/modules/relationship/dto"
	"social-spectrum-server/internal/modules/relationship/repo"
	platformservice "social-spectrum-server/internal/platform/service"
)

type Service struct {
	*platformservice.AppService
	relationshipStore repo.RelationshipStore
}

func New(appService *platformservice.AppService, relationshipStore repo.RelationshipStore) *Service {
	return &Service{
		AppService:        appService,
		relationshipStore: relationshipStore,
	}
}

// Followers lists the ids of users following userID.
func (s *Service) Followers(ctx context.Context, userID uint) ([]moduledto.Follower, error) {
	followers, err := s.relationshipStore.Followers(ctx, userID)
	if err != nil {
		return nil, common.WrapInternal(err, "list followers")
	}
	return followers, nil
}

func (s *Service) FollowedUsers(ctx context.Context, userID uint) ([]moduledto.FollowedUser, error) {
	users, err := s.relationshipStore.FollowedUsers(ctx, userID)
	if err != nil {
		return nil, common.WrapInternal(err, "list followed users")
	}
	return users, nil
}

func (s *Service) Follow(ctx context.Context, followerID, followedID uint) error {
	if followedID == 0 {
		return common.NewValidationError("User id is missing in body")
	}
	if followedID == followerID {
		return common.NewValidationError("You cannot follow yourself")
	}

	exists, err := s.relationshipStore.UserExists(ctx, followedID)
	if err != nil {
		return common.WrapInternal(err, "check user")
	}
	if !exists {
		return common.NewNotFoundError("User not found")
	}

	err = s.relationshipStore.Create(ctx, &model.UserRelationship{IsFollowingID: followerID, IsFollowedID: followedID})
	switch {
	case err == nil:
		return nil
	case db.IsDuplicateKey(err):
		return common.NewConflictError("User is already followed")
	case db.IsForeignKeyViolation(err):
		return common.NewNotFoundError("User not found")
	default:
		return common.WrapInternal(err, "follow user")
	}
}

// Unfollow is idempotent.
func (s *Service) Unfollow(ctx context.Context, followerID, followedID uint) error {
	if err := s.relationshipStore.Delete(ctx, followerID, followedID); err != nil {
		return common.WrapInternal(err, "unfollow user")
	}
	return nil
}
