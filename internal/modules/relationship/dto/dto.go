package dto

import (
	"social-spectrum-server/internal/common/httpx"
	"social-spectrum-server/internal/model"
)

type Follower struct {
	IsFollowingID uint `json:"isFollowingId"`
}

// FollowedUser is the profile summary of a user the caller follows.
type FollowedUser struct {
	ID             uint             `json:"id"`
	Name           string           `json:"name"`
	ProfilePicture *string          `json:"profilePicture"`
	Role           string           `json:"role"`
	StatusText     *string          `json:"statusText"`
	Username       string           `json:"username"`
	Visibility     model.Visibility `json:"visibility"`
}

type FollowRequest struct {
	UserIDToFollow httpx.FlexibleID `json:"userIdToFollow"`
}
