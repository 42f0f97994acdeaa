package dto

import (
	"time"

	"social-spectrum-server/internal/common/httpx"
)

// CommentView is a comment joined with its author.
type CommentView struct {
	ID             uint      `json:"id"`
	TextContent    string    `json:"textContent"`
	CommentUserID  uint      `json:"commentUserId"`
	PostID         uint      `json:"postId"`
	CreatedAt      time.Time `json:"createdAt"`
	Name           string    `json:"name"`
	ProfilePicture *string   `json:"profilePicture"`
	UserID         uint      `json:"userId"`
}

type AddCommentRequest struct {
	TextContent string           `json:"textContent"`
	PostID      httpx.FlexibleID `json:"postId"`
}
