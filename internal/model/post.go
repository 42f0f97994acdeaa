package model

import "time"

type Post struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"userId" gorm:"not null;index"`
	TextContent    string    `json:"textContent" gorm:"type:text;not null"`
	Image          *string   `json:"image"`
	BlurhashString *string   `json:"blurhashString" gorm:"size:64"`
	CreatedAt      time.Time `json:"createdAt" gorm:"index"`
	User           User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
}

type Comment struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	TextContent   string    `json:"textContent" gorm:"type:text;not null"`
	CommentUserID uint      `json:"commentUserId" gorm:"not null;index"`
	PostID        uint      `json:"postId" gorm:"not null;index"`
	CreatedAt     time.Time `json:"createdAt" gorm:"index"`
	User          User      `json:"-" gorm:"foreignKey:CommentUserID;references:ID;constraint:OnDelete:CASCADE;"`
	Post          Post      `json:"-" gorm:"foreignKey:PostID;references:ID;constraint:OnDelete:CASCADE;"`
}

type Like struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	LikeUserID uint `json:"likeUserId" gorm:"not null;uniqueIndex:idx_like_user_post"`
	LikePostID uint `json:"likePostId" gorm:"not null;uniqueIndex:idx_like_user_post;index"`
	User       User `json:"-" gorm:"foreignKey:LikeUserID;references:ID;constraint:OnDelete:CASCADE;"`
	Post       Post `json:"-" gorm:"foreignKey:LikePostID;references:ID;constraint:OnDelete:CASCADE;"`
}

type SavedPost struct {
	ID          uint `json:"id" gorm:"primaryKey"`
	UserID      uint `json:"userId" gorm:"not null;uniqueIndex:idx_saved_user_post"`
	SavedPostID uint `json:"savedPostId" gorm:"not null;uniqueIndex:idx_saved_user_post;index"`
	User        User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Post        Post `json:"-" gorm:"foreignKey:SavedPostID;references:ID;constraint:OnDelete:CASCADE;"`
}
