package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"social-spectrum-server/internal/common"
	"social-spectrum-server/internal/db"
	"social-spectrum-server/internal/model"
	moduledto "social-spectrum-server/internal/modules/auth/dto"
	"social-spectrum-server/internal/security"
	"social-spectrum-server/internal/utils"

	"gorm.io/gorm"
)

// Register creates a user and returns its id.
func (s *Service) Register(ctx context.Context, req moduledto.RegisterRequest) (uint, error) {
	if req.Email == "" || req.Username == "" || req.Name == "" || req.Password == "" {
		return 0, common.NewValidationError("Missing some fields")
	}
	if !utils.HasNoWhitespace(req.Username) {
		return 0, common.NewValidationError("No whitespaces are allowed")
	}

	email := utils.NormalizeIdentifier(req.Email)
	username := utils.NormalizeIdentifier(req.Username)
	name := strings.TrimSpace(req.Name)
	if email == "" || name == "" {
		return 0, common.NewValidationError("Missing some fields")
	}

	taken, err := s.userService.EmailTaken(ctx, email)
	if err != nil {
		return 0, common.WrapInternal(err, "check email")
	}
	if taken {
		return 0, common.NewConflictError(fmt.Sprintf("User %s is already registered.", email))
	}

	hashed, err := security.HashPassword(req.Password)
	if err != nil {
		return 0, common.WrapInternal(err, "hash password")
	}

	user := &model.User{
		Email:      email,
		Username:   username,
		Name:       name,
		Password:   hashed,
		Role:       "user",
		Visibility: model.VisibilityOnline,
	}
	if err := s.userService.Create(ctx, user); err != nil {
		if db.IsDuplicateKey(err) {
			return 0, common.NewConflictError("Username or email is already taken")
		}
		return 0, common.WrapInternal(err, "create user")
	}

	if strings.EqualFold(email, s.Config().Admin.Email) {
		s.ForgetAdminID(ctx)
	}
	return user.ID, nil
}

// Login verifies credentials and issues a session token. Unknown emails and
// wrong passwords fail the same way.
func (s *Service) Login(ctx context.Context, req moduledto.LoginRequest) (*moduledto.LoginResult, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, common.NewValidationError("Please enter a valid email and password")
	}

	user, err := s.userService.FindByEmail(ctx, utils.NormalizeIdentifier(req.Email))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, common.WrapInternal(err, "find user by email")
	}
	if user == nil || !security.VerifyPassword(req.Password, user.Password) {
		return nil, common.NewUnauthorizedError("Wrong email or password")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, common.WrapInternal(err, "issue session token")
	}
	return &moduledto.LoginResult{Token: token, User: user}, nil
}
