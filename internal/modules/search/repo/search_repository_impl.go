package repo

import (
	"context"
	"strings"

	"social-spectrum-server/internal/model"
	moduledto "social-spectrum-server/internal/modules/search/dto"

	"gorm.io/gorm"
)

// likeEscaper escapes LIKE wildcards with '!', which every supported
// dialect accepts as an ESCAPE character.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// ContainsPattern returns a LIKE pattern matching term literally anywhere in
// a column.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

type SearchRepository struct {
	db *gorm.DB
}

func (r *SearchRepository) Users(ctx context.Context, term string, limit int) ([]moduledto.UserHit, error) {
	pattern := ContainsPattern(term)
	users := make([]moduledto.UserHit, 0)
	err := r.db.WithContext(ctx).
		Model(&model.User{}).
		Select("id, profile_picture, name, username").
		Where("LOWER(name) LIKE LOWER(?) ESCAPE '!' OR LOWER(username) LIKE LOWER(?) ESCAPE '!'", pattern, pattern).
		Order("id ASC").
		Limit(limit).
		Scan(&users).Error
	return users, err
}

func (r *SearchRepository) Posts(ctx context.Context, term string, limit int) ([]moduledto.PostHit, error) {
	posts := make([]moduledto.PostHit, 0)
	err := r.db.WithContext(ctx).
		Model(&model.Post{}).
		Select("id, user_id, text_content, image").
		Where("LOWER(text_content) LIKE LOWER(?) ESCAPE '!'", ContainsPattern(term)).
		Order("id DESC").
		Limit(limit).
		Scan(&posts).Error
	return posts, err
}
