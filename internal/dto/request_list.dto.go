package dto

import (
	"time"

	"gorm.io/datatypes"
)

type MembershipRequestDTO struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type RecruitmentApplicationDTO struct {
	ID                 uint      `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	ResumeURL          string    `json:"resume_url"`
	PhotoIDURL         string    `json:"photo_id_url"`
	BackgroundCheckURL string    `json:"background_check_url"`
	CreatedAt          time.Time `json:"created_at"`
}

type ProfileUpdateRequestDTO struct {
	ID               uint           `json:"id"`
	ClientID         uint           `json:"client_id"`
	ClientName       string         `json:"client_name"`
	ClientEmail      string         `json:"client_email"`
	RequestedChanges datatypes.JSON `json:"requested_changes"`
	CreatedAt        time.Time      `json:"created_at"`
}
