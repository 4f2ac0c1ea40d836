package models

import (
	"time"

	"gorm.io/datatypes"
)

// The three pending-request tables share the same review columns:
// status starts PENDING and moves exactly once to APPROVED or
// REJECTED, recording who decided and when.

type MembershipRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Message string `gorm:"size:1000" json:"message"`

	Status     string     `gorm:"size:20;default:'PENDING';index" json:"status"`
	ReviewedAt *time.Time `json:"reviewed_at"`
	ReviewerID *uint      `json:"reviewer_id"`

	CreatedAt time.Time `json:"created_at"`
}

type RecruitmentApplication struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;not null" json:"email"`

	ResumeURL          string `gorm:"size:255;not null" json:"resume_url"`
	PhotoIDURL         string `gorm:"size:255;not null" json:"photo_id_url"`
	BackgroundCheckURL string `gorm:"size:255;not null" json:"background_check_url"`

	FacebookURL  string `gorm:"size:255" json:"facebook_url"`
	InstagramURL string `gorm:"size:255" json:"instagram_url"`
	TikTokURL    string `gorm:"size:255" json:"tiktok_url"`
	YouTubeURL   string `gorm:"size:255" json:"youtube_url"`
	TwitterURL   string `gorm:"size:255" json:"twitter_url"`

	Status     string     `gorm:"size:20;default:'PENDING';index" json:"status"`
	ReviewedAt *time.Time `json:"reviewed_at"`
	ReviewerID *uint      `json:"reviewer_id"`

	CreatedAt time.Time `json:"created_at"`
}

// ProfileUpdateRequest carries a partial patch of profile fields as
// JSON. Only the keys present in RequestedChanges are applied on
// approval.
type ProfileUpdateRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	RequestedChanges datatypes.JSON `json:"requested_changes"`

	Status     string     `gorm:"size:20;default:'PENDING';index" json:"status"`
	ReviewedAt *time.Time `json:"reviewed_at"`
	ReviewerID *uint      `json:"reviewer_id"`

	CreatedAt time.Time `json:"created_at"`
}
