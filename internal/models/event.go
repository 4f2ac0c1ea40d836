package models

import "time"

type Event struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"size:1000" json:"description"`
	EventDate   time.Time `gorm:"not null" json:"event_date"`
	Location    string    `gorm:"size:255;not null" json:"location"`

	TotalTickets int    `gorm:"not null" json:"total_tickets"`
	TicketsSold  int    `gorm:"default:0" json:"tickets_sold"`
	ImageURL     string `gorm:"size:255" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
}

// EventBooking ties a client to an event. A client can hold at most
// one booking per event, enforced by the composite unique index.
type EventBooking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"not null;uniqueIndex:idx_event_bookings_client_event" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	EventID uint  `gorm:"not null;uniqueIndex:idx_event_bookings_client_event" json:"event_id"`
	Event   Event `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"event"`

	TicketsBooked int `gorm:"default:1" json:"tickets_booked"`

	CreatedAt time.Time `json:"created_at"`
}

// ReferralReward credits an affiliate for bringing in a guest.
type ReferralReward struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ReferrerID uint `gorm:"not null;index" json:"referrer_id"`
	ReferredID uint `gorm:"not null" json:"referred_id"`

	CreatedAt time.Time `json:"created_at"`
}
