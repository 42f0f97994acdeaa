package model

// UserRelationship is a directed follow edge: IsFollowingID follows IsFollowedID.
type UserRelationship struct {
	ID            uint `json:"id" gorm:"primaryKey"`
	IsFollowingID uint `json:"isFollowingId" gorm:"not null;uniqueIndex:idx_relationship_pair"`
	IsFollowedID  uint `json:"isFollowedId" gorm:"not null;uniqueIndex:idx_relationship_pair;index"`
	Following     User `json:"-" gorm:"foreignKey:IsFollowingID;references:ID;constraint:OnDelete:CASCADE;"`
	Followed      User `json:"-" gorm:"foreignKey:IsFollowedID;references:ID;constraint:OnDelete:CASCADE;"`
}
