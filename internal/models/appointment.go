package models

import "time"

// Appointment is one booked slot on the single shared calendar.
// The unique index on StartTime is the authoritative double-booking
// guard; application-level checks are a fast path only.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Service string `gorm:"size:100;not null" json:"service"`

	StartTime time.Time `gorm:"uniqueIndex;not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
}
