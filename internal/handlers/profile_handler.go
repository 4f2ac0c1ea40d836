package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ravenstudio/raven-community-api/internal/httperr"
	"github.com/ravenstudio/raven-community-api/internal/httpresp"
	"github.com/ravenstudio/raven-community-api/internal/middleware"
	"github.com/ravenstudio/raven-community-api/internal/models"
)

type ProfileHandler struct {
	db *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

type ProfileResponse struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Bio             string `json:"bio"`
	ProfileImageURL string `json:"profile_image_url"`
	IsProfilePublic bool   `json:"is_profile_public"`
	IsImagePublic   bool   `json:"is_image_public"`
	ReferralCode    string `json:"referral_code"`
}

type SettingsRequest struct {
	IsProfilePublic *bool `json:"is_profile_public" binding:"required"`
	IsImagePublic   *bool `json:"is_image_public" binding:"required"`
}

type PublicProfileDTO struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Bio             string `json:"bio"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
}

type BadgeDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ======================================================
// GET /api/profile (authenticated)
// ======================================================

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	var client models.Client
	if err := h.db.First(&client, clientID).Error; err != nil {
		httperr.NotFoundStatus(c, "client_not_found", "User not found.")
		return
	}

	httpresp.OK(c, ProfileResponse{
		Name:            client.Name,
		Email:           client.Email,
		Bio:             client.Bio,
		ProfileImageURL: client.ProfileImageURL,
		IsProfilePublic: client.IsProfilePublic,
		IsImagePublic:   client.IsImagePublic,
		ReferralCode:    client.ReferralCode,
	})
}

// ======================================================
// POST /api/profile-settings (authenticated)
// ======================================================

// UpdateSettings flips the two visibility flags directly. Everything
// else about a profile changes through the moderated
// profile-update-request flow.
func (h *ProfileHandler) UpdateSettings(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	var req SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_settings", "Invalid settings format.")
		return
	}

	if err := h.db.
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Updates(map[string]any{
			"is_profile_public": *req.IsProfilePublic,
			"is_image_public":   *req.IsImagePublic,
		}).Error; err != nil {
		httperr.InternalStatus(c, "settings_update_failed", "Could not update settings.")
		return
	}

	httpresp.Message(c, "Settings updated successfully.")
}

// ======================================================
// GET /api/public-profiles
// ======================================================

func (h *ProfileHandler) ListPublicProfiles(c *gin.Context) {
	var clients []models.Client
	if err := h.db.
		Where("is_profile_public = ?", true).
		Order("name ASC").
		Find(&clients).Error; err != nil {
		httperr.InternalStatus(c, "profile_list_failed", "Could not fetch profiles.")
		return
	}

	out := make([]PublicProfileDTO, 0, len(clients))
	for _, cl := range clients {
		p := PublicProfileDTO{
			ID:   cl.ID,
			Name: cl.Name,
			Bio:  cl.Bio,
		}
		if cl.IsImagePublic {
			p.ProfileImageURL = cl.ProfileImageURL
		}
		out = append(out, p)
	}

	httpresp.List(c, out)
}

// ======================================================
// GET /api/badges?clientId=
// ======================================================

func (h *ProfileHandler) ListBadges(c *gin.Context) {
	clientID := c.Query("clientId")
	if clientID == "" {
		httperr.BadRequest(c, "missing_client_id", "clientId parameter is required.")
		return
	}

	var badges []BadgeDTO
	if err := h.db.
		Model(&models.ClientBadge{}).
		Select("badges.name", "badges.description").
		Joins("JOIN badges ON badges.id = client_badges.badge_id").
		Where("client_badges.client_id = ?", clientID).
		Scan(&badges).Error; err != nil {
		httperr.InternalStatus(c, "badge_list_failed", "Could not fetch badges.")
		return
	}

	httpresp.List(c, badges)
}
