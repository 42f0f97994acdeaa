package dto

import (
	"mime/multipart"
	"time"

	"social-spectrum-server/internal/common/httpx"
)

// FeedPost is a post joined with its author and the viewer's interactions.
// The two flags are 0 or 1.
type FeedPost struct {
	ID                       uint      `json:"id"`
	UserID                   uint      `json:"userId"`
	TextContent              string    `json:"textContent"`
	Image                    *string   `json:"image"`
	BlurhashString           *string   `json:"blurhashString"`
	CreatedAt                time.Time `json:"createdAt"`
	Name                     string    `json:"name"`
	ProfilePicture           *string   `json:"profilePicture"`
	LikesNum                 int64     `json:"likesNum"`
	CommentsNum              int64     `json:"commentsNum"`
	IsPostLikedByCurrentUser int       `json:"isPostLikedByCurrentUser"`
	IsPostSavedByCurrentUser int       `json:"isPostSavedByCurrentUser"`
}

type AddPostRequest struct {
	TextContent string
	Image       *multipart.FileHeader
}

type SavePostRequest struct {
	PostID httpx.FlexibleID `json:"postId"`
}
