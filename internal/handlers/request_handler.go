package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ravenstudio/raven-community-api/internal/httperr"
	"github.com/ravenstudio/raven-community-api/internal/httpresp"
	"github.com/ravenstudio/raven-community-api/internal/middleware"
	"github.com/ravenstudio/raven-community-api/internal/models"
	"github.com/ravenstudio/raven-community-api/internal/usecase/approval"
	"github.com/ravenstudio/raven-community-api/internal/validators"
)

// RequestHandler owns the public submission surface: every endpoint
// here only writes a pending row (or a lead); the admin approval
// flow consumes them later.
type RequestHandler struct {
	db *gorm.DB
}

func NewRequestHandler(db *gorm.DB) *RequestHandler {
	return &RequestHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type MembershipRequestBody struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message"`
}

type RecruitmentApplicationBody struct {
	Name               string `json:"name" binding:"required"`
	Email              string `json:"email" binding:"required"`
	ResumeURL          string `json:"resume_url" binding:"required"`
	PhotoIDURL         string `json:"photo_id_url" binding:"required"`
	BackgroundCheckURL string `json:"background_check_url" binding:"required"`
	FacebookURL        string `json:"facebook_url"`
	InstagramURL       string `json:"instagram_url"`
	TikTokURL          string `json:"tiktok_url"`
	YouTubeURL         string `json:"youtube_url"`
	TwitterURL         string `json:"twitter_url"`
}

type LeadBody struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Message string `json:"message"`
}

// ======================================================
// POST /api/membership-request
// ======================================================

func (h *RequestHandler) SubmitMembershipRequest(c *gin.Context) {
	var body MembershipRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and email are required.")
		return
	}
	if !validators.IsEmailShaped(body.Email) {
		httperr.BadRequest(c, "invalid_email", "A valid email address is required.")
		return
	}

	// Repeat submissions with the same email are ignored.
	req := models.MembershipRequest{
		Name:    body.Name,
		Email:   body.Email,
		Message: body.Message,
	}
	if err := h.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&req).Error; err != nil {
		httperr.InternalStatus(c, "request_submit_failed", "Could not submit your request.")
		return
	}

	httpresp.Message(c, "Your request to join the Raven community has been submitted for approval!")
}

// ======================================================
// POST /api/recruitment-application
// ======================================================

func (h *RequestHandler) SubmitRecruitmentApplication(c *gin.Context) {
	var body RecruitmentApplicationBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required fields.")
		return
	}
	if !validators.IsEmailShaped(body.Email) {
		httperr.BadRequest(c, "invalid_email", "A valid email address is required.")
		return
	}

	app := models.RecruitmentApplication{
		Name:               body.Name,
		Email:              body.Email,
		ResumeURL:          body.ResumeURL,
		PhotoIDURL:         body.PhotoIDURL,
		BackgroundCheckURL: body.BackgroundCheckURL,
		FacebookURL:        body.FacebookURL,
		InstagramURL:       body.InstagramURL,
		TikTokURL:          body.TikTokURL,
		YouTubeURL:         body.YouTubeURL,
		TwitterURL:         body.TwitterURL,
	}
	if err := h.db.Create(&app).Error; err != nil {
		httperr.InternalStatus(c, "application_submit_failed", "Could not submit your application.")
		return
	}

	httpresp.Message(c, "Application submitted successfully!")
}

// ======================================================
// POST /api/profile-update-request (authenticated)
// ======================================================

func (h *RequestHandler) SubmitProfileUpdateRequest(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	var patch approval.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid change set.")
		return
	}

	raw, err := json.Marshal(patch)
	if err != nil {
		httperr.InternalStatus(c, "request_submit_failed", "Could not submit your request.")
		return
	}

	req := models.ProfileUpdateRequest{
		ClientID:         clientID,
		RequestedChanges: datatypes.JSON(raw),
	}
	if err := h.db.Create(&req).Error; err != nil {
		httperr.InternalStatus(c, "request_submit_failed", "Could not submit your request.")
		return
	}

	httpresp.Message(c, "Your profile changes have been submitted for review.")
}

// ======================================================
// POST /api/capture-lead
// ======================================================

func (h *RequestHandler) CaptureLead(c *gin.Context) {
	var body LeadBody
	if err := c.ShouldBindJSON(&body); err != nil {
		httperr.BadRequest(c, "invalid_request", "Name and email are required.")
		return
	}

	lead := models.Lead{
		Name:    body.Name,
		Email:   body.Email,
		Message: body.Message,
	}
	if err := h.db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&lead).Error; err != nil {
		httperr.InternalStatus(c, "lead_capture_failed", "Could not save your signup.")
		return
	}

	httpresp.Message(c, "Thank you for joining the Raven community!")
}

// ======================================================
// GET /api/check-client?email=
// ======================================================

func (h *RequestHandler) CheckClient(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		httperr.BadRequest(c, "missing_email", "Email parameter is required.")
		return
	}

	var count int64
	if err := h.db.
		Model(&models.Client{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		httperr.InternalStatus(c, "client_check_failed", "Could not check the client.")
		return
	}

	httpresp.OK(c, gin.H{"exists": count > 0})
}
