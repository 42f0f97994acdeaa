package repo

import (
	"context"

	"social-spectrum-server/internal/model"
	moduledto "social-spectrum-server/internal/modules/relationship/dto"

	"gorm.io/gorm"
)

type RelationshipStore interface {
	Followers(ctx context.Context, userID uint) ([]moduledto.Follower, error)
	FollowedUsers(ctx context.Context, userID uint) ([]moduledto.FollowedUser, error)
	UserExists(ctx context.Context, userID uint) (bool, error)
	Create(ctx context.Context, rel *model.UserRelationship) error
	Delete(ctx context.Context, followerID, followedID uint) error
}

func NewRelationshipRepository(db *gorm.DB) RelationshipStore {
	return &RelationshipRepository{db: db}
}
