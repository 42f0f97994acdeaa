package dto

import (
	"mime/multipart"
	"time"
)

// StoryView is a story joined with its author.
type StoryView struct {
	ID             uint      `json:"id"`
	StoryUserID    uint      `json:"storyUserId"`
	ImageURL       *string   `json:"imageUrl"`
	BlurhashString *string   `json:"blurhashString"`
	CreatedAt      time.Time `json:"createdAt"`
	Name           string    `json:"name"`
	ProfilePicture *string   `json:"profilePicture"`
}

type AddStoryRequest struct {
	Image *multipart.FileHeader
}
