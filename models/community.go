package models

import (
	"time"
)

// Community is a passcode-gated group whose members can see each other's
// offerings.
type Community struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:64;uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Passcode    string    `gorm:"size:64;not null" json:"-"` // shared join secret, never serialized
	CreatorID   uint      `gorm:"not null;index" json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CommunityMember is the membership edge between a user and a community.
// Membership lives only here; neither side keeps a redundant list.
type CommunityMember struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CommunityID uint      `gorm:"not null;index;uniqueIndex:uk_community_user" json:"community_id"`
	UserID      uint      `gorm:"not null;index;uniqueIndex:uk_community_user" json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// CommunityInput holds data for creating a community
type CommunityInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Passcode    string `json:"passcode" binding:"required"`
}

// JoinInput holds data for joining a community
type JoinInput struct {
	CommunityID uint   `json:"community_id" binding:"required"`
	Passcode    string `json:"passcode" binding:"required"`
}
