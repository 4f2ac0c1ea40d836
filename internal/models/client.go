package models

import "time"

// Client is the long-lived aggregate. Appointments, event bookings
// and pending requests reference it but never own its lifecycle.
// Role holds an ordered, comma-separated set of capability tags
// (e.g. "MEMBER,A-TEAM"); PasswordHash is nil for guest clients
// created through booking or enrollment.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string  `gorm:"size:100;not null" json:"name"`
	Email        string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash *string `gorm:"size:255" json:"-"`

	Role         string `gorm:"size:100;default:'GUEST'" json:"role"`
	ReferralCode string `gorm:"size:40;uniqueIndex" json:"referral_code"`

	Bio             string `gorm:"size:1000" json:"bio"`
	ProfileImageURL string `gorm:"size:255" json:"profile_image_url"`
	IsProfilePublic bool   `gorm:"default:false" json:"is_profile_public"`
	IsImagePublic   bool   `gorm:"default:false" json:"is_image_public"`

	FacebookURL  string `gorm:"size:255" json:"facebook_url"`
	InstagramURL string `gorm:"size:255" json:"instagram_url"`
	TikTokURL    string `gorm:"size:255" json:"tiktok_url"`
	YouTubeURL   string `gorm:"size:255" json:"youtube_url"`
	TwitterURL   string `gorm:"size:255" json:"twitter_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
