package model

import "time"

type Story struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	StoryUserID    uint      `json:"storyUserId" gorm:"not null;index"`
	ImageURL       *string   `json:"imageUrl"`
	BlurhashString *string   `json:"blurhashString" gorm:"size:64"`
	CreatedAt      time.Time `json:"createdAt" gorm:"index"`
	User           User      `json:"-" gorm:"foreignKey:StoryUserID;references:ID;constraint:OnDelete:CASCADE;"`
}
