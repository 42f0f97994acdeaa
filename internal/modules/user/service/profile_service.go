package service

import (
	"context"
	"errors"
	"log/slog"
	"mime/multipart"
	"strings"

	"social-spectrum-server/internal/common"
	"social-spectrum-server/internal/db"
	"social-spectrum-server/internal/model"
	moduledto "social-spectrum-server/internal/modules/user/dto"
	"social-spectrum-server/internal/modules/user/repo"
	"social-spectrum-server/internal/security"
	"social-spectrum-server/internal/storage"
	"social-spectrum-server/internal/utils"

	"gorm.io/gorm"
)

func (s *Service) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userStore.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError("No user found with given id")
		}
		return nil, common.WrapInternal(err, "find user")
	}
	return user, nil
}

// UpdateProfile replaces the caller's profile fields. New pictures are
// uploaded first; the pictures they replace are removed before the update
// commits, and new uploads are removed again if anything fails.
func (s *Service) UpdateProfile(ctx context.Context, userID uint, req moduledto.UpdateProfileRequest) error {
	name := strings.TrimSpace(req.Name)
	username := ""
	if utils.HasNoWhitespace(req.Username) {
		username = utils.NormalizeIdentifier(req.Username)
	}
	email := utils.NormalizeIdentifier(req.Email)
	if name == "" || username == "" || email == "" {
		return common.NewValidationError("Some required fields are missing")
	}

	update := repo.ProfileUpdate{
		Name:       name,
		Username:   username,
		Email:      email,
		Country:    req.Country,
		StatusText: req.StatusText,
		Languages:  req.Languages,
	}

	var uploaded []string
	cleanup := func() {
		for _, url := range uploaded {
			if err := s.RemoveImage(context.WithoutCancel(ctx), storage.BucketProfileBgImages, url, ""); err != nil {
				slog.Warn("remove orphaned profile image failed", "url", url, "error", err)
			}
		}
	}

	var err error
	if update.ProfilePicture, err = s.uploadProfileImage(ctx, req.ProfilePicture); err != nil {
		return err
	}
	if update.ProfilePicture != nil {
		uploaded = append(uploaded, *update.ProfilePicture)
	}
	if update.BgPicture, err = s.uploadProfileImage(ctx, req.BgPicture); err != nil {
		cleanup()
		return err
	}
	if update.BgPicture != nil {
		uploaded = append(uploaded, *update.BgPicture)
	}

	var previousEmail string
	err = s.userStore.UpdateProfile(ctx, userID, update, func(previous *model.User) error {
		previousEmail = previous.Email
		return s.removeReplacedImages(ctx, previous, update)
	})
	if err != nil {
		cleanup()
		return s.translateProfileError(err)
	}

	adminEmail := s.Config().Admin.Email
	if strings.EqualFold(email, adminEmail) || strings.EqualFold(previousEmail, adminEmail) {
		s.ForgetAdminID(ctx)
	}
	return nil
}

func (s *Service) uploadProfileImage(ctx context.Context, file *multipart.FileHeader) (*string, error) {
	if file == nil {
		return nil, nil
	}
	stored, err := s.StoreImage(ctx, storage.BucketProfileBgImages, file, false)
	if err != nil {
		return nil, err
	}
	return &stored.URL, nil
}

func (s *Service) removeReplacedImages(ctx context.Context, previous *model.User, update repo.ProfileUpdate) error {
	const failMessage = "Error occurred while deleting old images"
	if update.ProfilePicture != nil && previous.ProfilePicture != nil {
		if err := s.RemoveImage(ctx, storage.BucketProfileBgImages, *previous.ProfilePicture, failMessage); err != nil {
			return err
		}
	}
	if update.BgPicture != nil && previous.BgPicture != nil {
		if err := s.RemoveImage(ctx, storage.BucketProfileBgImages, *previous.BgPicture, failMessage); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) translateProfileError(err error) error {
	if _, ok := common.AsServiceError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return common.NewNotFoundError("No user found with given id")
	case db.IsDuplicateKey(err):
		return common.NewConflictError("Username or email is already taken")
	default:
		return common.WrapInternal(err, "update profile")
	}
}

// CheckPassword verifies the caller's current password.
func (s *Service) CheckPassword(ctx context.Context, userID uint, password string) error {
	user, err := s.userStore.FindByID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return common.WrapInternal(err, "load password hash")
	}
	if user == nil || password == "" || !security.VerifyPassword(password, user.Password) {
		return common.NewUnauthorizedError("Incorrect or missing password")
	}
	return nil
}

func (s *Service) UpdatePassword(ctx context.Context, userID uint, req moduledto.PasswordUpdateRequest) error {
	if req.OldPassword == "" || req.NewPassword == "" || req.NewPassword != req.NewPasswordConfirmation {
		return common.NewValidationError("Some fields are missing or not valid")
	}
	if err := s.CheckPassword(ctx, userID, req.OldPassword); err != nil {
		return err
	}

	hashed, err := security.HashPassword(req.NewPassword)
	if err != nil {
		return common.WrapInternal(err, "hash password")
	}
	if err := s.userStore.UpdatePassword(ctx, userID, hashed); err != nil {
		return common.WrapInternal(err, "update password")
	}
	return nil
}

// UpdateVisibility lets a user change only their own visibility.
func (s *Service) UpdateVisibility(ctx context.Context, callerID, userID uint, visibility string) error {
	if callerID != userID {
		return common.NewForbiddenError("You do not have permission to change this property")
	}
	value := model.Visibility(visibility)
	if !value.Valid() {
		return common.NewValidationError("Unknown status: " + visibility)
	}
	if err := s.userStore.UpdateVisibility(ctx, userID, value); err != nil {
		return common.WrapInternal(err, "update visibility")
	}
	return nil
}

// DeleteAccount removes the account and its profile pictures. The owner or
// the admin may do this.
func (s *Service) DeleteAccount(ctx context.Context, callerID, userID uint) error {
	isAdmin, err := s.IsAdmin(ctx, callerID)
	if err != nil {
		return err
	}

	var deletedEmail string
	err = s.userStore.DeleteOwned(ctx, userID, callerID, isAdmin, func(deleted *model.User) error {
		deletedEmail = deleted.Email
		return s.removeAccountImages(ctx, deleted)
	})
	if err != nil {
		if _, ok := common.AsServiceError(err); ok {
			return err
		}
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return common.NewNotFoundError("User not found")
		case errors.Is(err, db.ErrNotOwner):
			return common.NewForbiddenError("You do not have permission to delete this account")
		default:
			return common.WrapInternal(err, "delete account")
		}
	}

	if strings.EqualFold(deletedEmail, s.Config().Admin.Email) {
		s.ForgetAdminID(ctx)
	}
	return nil
}

func (s *Service) removeAccountImages(ctx context.Context, user *model.User) error {
	const failMessage = "Something went wrong while deleting account images"
	for _, url := range []*string{user.ProfilePicture, user.BgPicture} {
		if url == nil {
			continue
		}
		if err := s.RemoveImage(ctx, storage.BucketProfileBgImages, *url, failMessage); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) SuggestedUsers(ctx context.Context, userID uint) ([]moduledto.UserCard, error) {
	users, err := s.userStore.Suggested(ctx, userID, suggestedUsersLimit)
	if err != nil {
		return nil, common.WrapInternal(err, "list suggested users")
	}
	return toCards(users), nil
}

func (s *Service) OnlineFriends(ctx context.Context, userID uint) ([]moduledto.UserCard, error) {
	users, err := s.userStore.OnlineFriends(ctx, userID, onlineFriendsLimit)
	if err != nil {
		return nil, common.WrapInternal(err, "list online friends")
	}
	return toCards(users), nil
}

func toCards(users []model.User) []moduledto.UserCard {
	cards := make([]moduledto.UserCard, 0, len(users))
	for _, u := range users {
		cards = append(cards, moduledto.UserCard{ID: u.ID, Name: u.Name, ProfilePicture: u.ProfilePicture})
	}
	return cards
}
