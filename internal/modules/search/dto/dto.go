package dto

type UserHit struct {
	ID             uint    `json:"id"`
	ProfilePicture *string `json:"profilePicture"`
	Name           string  `json:"name"`
	Username       string  `json:"username"`
}

type PostHit struct {
	ID          uint    `json:"id"`
	UserID      uint    `json:"userId"`
	TextContent string  `json:"textContent"`
	Image       *string `json:"image"`
}

type SearchResult struct {
	NamesSearch []UserHit `json:"namesSearch"`
	PostsSearch []PostHit `json:"postsSearch"`
}
