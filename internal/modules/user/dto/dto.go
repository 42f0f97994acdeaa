package dto

import "mime/multipart"

// UserCard is the short user shape used by suggestion and presence lists.
type UserCard struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	ProfilePicture *string `json:"profilePicture"`
}

type UpdateProfileRequest struct {
	Name           string
	Username       string
	Email          string
	Country        *string
	StatusText     *string
	Languages      *string
	ProfilePicture *multipart.FileHeader
	BgPicture      *multipart.FileHeader
}

type PasswordCheckRequest struct {
	Password string `json:"password"`
}

type PasswordUpdateRequest struct {
	OldPassword             string `json:"oldPassword"`
	NewPassword             string `json:"newPassword"`
	NewPasswordConfirmation string `json:"newPasswordConfirmation"`
}

type VisibilityRequest struct {
	Visibility string `json:"visibility"`
}
