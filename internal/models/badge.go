package models

import "time"

type Badge struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}

type ClientBadge struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `gorm:"not null;uniqueIndex:idx_client_badges_client_badge" json:"client_id"`
	BadgeID  uint `gorm:"not null;uniqueIndex:idx_client_badges_client_badge" json:"badge_id"`

	CreatedAt time.Time `json:"created_at"`
}
