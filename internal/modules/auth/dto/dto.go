package dto

import "social-spectrum-server/internal/model"

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is a verified user with a freshly issued session token.
type LoginResult struct {
	Token string
	User  *model.User
}
