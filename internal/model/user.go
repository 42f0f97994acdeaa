package model

import "time"

type Visibility string

const (
	VisibilityOnline    Visibility = "online"
	VisibilityInvisible Visibility = "invisible"
)

// Valid reports whether v is one of the accepted visibility values.
func (v Visibility) Valid() bool {
	return v == VisibilityOnline || v == VisibilityInvisible
}

type User struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Email          string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username       string     `json:"username" gorm:"uniqueIndex;size:64;not null"`
	Name           string     `json:"name" gorm:"size:255;not null"`
	Password       string     `json:"-" gorm:"not null"`
	Role           string     `json:"role" gorm:"size:32;not null;default:user"`
	ProfilePicture *string    `json:"profilePicture"`
	BgPicture      *string    `json:"bgPicture"`
	Country        *string    `json:"country" gorm:"size:128"`
	StatusText     *string    `json:"statusText" gorm:"size:255"`
	Languages      *string    `json:"languages" gorm:"size:255"`
	Visibility     Visibility `json:"visibility" gorm:"size:16;not null;default:online;index"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
