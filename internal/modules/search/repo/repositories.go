package repo

import (
	"context"

	moduledto "social-spectrum-server/internal/modules/search/dto"

	"gorm.io/gorm"
)

type SearchStore interface {
	Users(ctx context.Context, term string, limit int) ([]moduledto.UserHit, error)
	Posts(ctx context.Context, term string, limit int) ([]moduledto.PostHit, error)
}

func NewSearchRepository(db *gorm.DB) SearchStore {
	return &SearchRepository{db: db}
}
