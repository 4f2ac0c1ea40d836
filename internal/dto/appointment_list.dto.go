package dto

import "time"

type AppointmentListDTO struct {
	ID        uint      `json:"id"`
	Service   string    `json:"service"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

type LeaderboardEntryDTO struct {
	Rank          int    `json:"rank"`
	AffiliateID   uint   `json:"affiliate_id"`
	AffiliateName string `json:"affiliate_name"`
	ReferralCount int    `json:"referral_count"`
}
