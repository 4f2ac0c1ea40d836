package models

import "time"

// Lead is a landing-page signup. Repeat submissions with the same
// email are silently ignored.
type Lead struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Message string `gorm:"size:1000" json:"message"`

	CreatedAt time.Time `json:"created_at"`
}
