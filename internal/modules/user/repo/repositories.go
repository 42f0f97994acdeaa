package repo

import (
	"context"

	"social-spectrum-server/internal/model"

	"gorm.io/gorm"
)

// ProfileUpdate holds the editable profile columns. Nil pictures keep the
// stored value.
type ProfileUpdate struct {
	Name           string
	Username       string
	Email          string
	Country        *string
	StatusText     *string
	Languages      *string
	ProfilePicture *string
	BgPicture      *string
}

type UserStore interface {
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindIDByEmail(ctx context.Context, email string) (uint, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *model.User) error
	// UpdateProfile writes update and calls afterUpdate with the previous row
	// inside the same transaction. An afterUpdate error rolls back.
	UpdateProfile(ctx context.Context, id uint, update ProfileUpdate, afterUpdate func(previous *model.User) error) error
	UpdatePassword(ctx context.Context, id uint, hashedPassword string) error
	UpdateVisibility(ctx context.Context, id uint, visibility model.Visibility) error
	DeleteOwned(ctx context.Context, id, callerID uint, isAdmin bool, beforeCommit func(deleted *model.User) error) error
	Suggested(ctx context.Context, userID uint, limit int) ([]model.User, error)
	OnlineFriends(ctx context.Context, userID uint, limit int) ([]model.User, error)
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}
