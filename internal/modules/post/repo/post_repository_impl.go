package repo

import (
	"context"

	"social-spectrum-server/internal/db"
	"social-spectrum-server/internal/model"
	moduledto "social-spectrum-server/internal/modules/post/dto"

	"gorm.io/gorm"
)

// feedSelect takes the viewer id twice: once for likes, once for bookmarks.
const feedSelect = `SELECT
	posts.id,
	posts.user_id,
	posts.text_content,
	posts.image,
	posts.blurhash_string,
	posts.created_at,
	users.name,
	users.profile_picture,
	(SELECT COUNT(*) FROM likes WHERE likes.like_post_id = posts.id) AS likes_num,
	(SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comments_num,
	CASE WHEN EXISTS (
		SELECT 1 FROM likes WHERE likes.like_post_id = posts.id AND likes.like_user_id = ?
	) THEN 1 ELSE 0 END AS is_post_liked_by_current_user,
	CASE WHEN EXISTS (
		SELECT 1 FROM saved_posts WHERE saved_posts.saved_post_id = posts.id AND saved_posts.user_id = ?
	) THEN 1 ELSE 0 END AS is_post_saved_by_current_user
FROM posts
INNER JOIN users ON users.id = posts.user_id`

type PostRepository struct {
	db *gorm.DB
}

// HomeFeed returns the viewer's own posts and posts of users they follow.
func (r *PostRepository) HomeFeed(ctx context.Context, viewerID uint, limit int) ([]moduledto.FeedPost, error) {
	sql := feedSelect + `
WHERE posts.user_id = ?
	OR posts.user_id IN (SELECT is_followed_id FROM user_relationships WHERE is_following_id = ?)
ORDER BY posts.created_at DESC, posts.id DESC
LIMIT ?`
	return r.scanFeed(ctx, sql, viewerID, viewerID, viewerID, viewerID, limit)
}

func (r *PostRepository) UserFeed(ctx context.Context, viewerID, authorID uint, limit int) ([]moduledto.FeedPost, error) {
	sql := feedSelect + `
WHERE posts.user_id = ?
ORDER BY posts.created_at DESC, posts.id DESC
LIMIT ?`
	return r.scanFeed(ctx, sql, viewerID, viewerID, authorID, limit)
}

// SavedFeed lists bookmarked posts in the order they were bookmarked.
func (r *PostRepository) SavedFeed(ctx context.Context, viewerID uint, limit int) ([]moduledto.FeedPost, error) {
	sql := feedSelect + `
INNER JOIN saved_posts ON saved_posts.saved_post_id = posts.id
WHERE saved_posts.user_id = ?
ORDER BY saved_posts.id ASC
LIMIT ?`
	return r.scanFeed(ctx, sql, viewerID, viewerID, viewerID, limit)
}

func (r *PostRepository) scanFeed(ctx context.Context, sql string, args ...interface{}) ([]moduledto.FeedPost, error) {
	posts := make([]moduledto.FeedPost, 0)
	if err := r.db.WithContext(ctx).Raw(sql, args...).Scan(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *PostRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Post{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *PostRepository) DeleteOwned(ctx context.Context, id, callerID uint, isAdmin bool, beforeCommit func(deleted *model.Post) error) error {
	var post model.Post
	return db.DeleteOwned(ctx, r.db, &post, db.OwnedDelete{
		ID:          id,
		OwnerColumn: "user_id",
		CallerID:    callerID,
		IsAdmin:     isAdmin,
		BeforeCommit: func() error {
			if beforeCommit == nil {
				return nil
			}
			return beforeCommit(&post)
		},
	})
}
