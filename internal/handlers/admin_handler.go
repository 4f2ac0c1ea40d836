package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ravenstudio/raven-community-api/internal/crypto"
	approvalDomain "github.com/ravenstudio/raven-community-api/internal/domain/approval"
	"github.com/ravenstudio/raven-community-api/internal/domain/roles"
	"github.com/ravenstudio/raven-community-api/internal/dto"
	"github.com/ravenstudio/raven-community-api/internal/httperr"
	"github.com/ravenstudio/raven-community-api/internal/httpresp"
	"github.com/ravenstudio/raven-community-api/internal/middleware"
	"github.com/ravenstudio/raven-community-api/internal/models"
	ucApproval "github.com/ravenstudio/raven-community-api/internal/usecase/approval"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db           *gorm.DB
	requests     approvalDomain.Repository
	transitionUC *ucApproval.Transition
}

func NewAdminHandler(
	db *gorm.DB,
	requests approvalDomain.Repository,
	transitionUC *ucApproval.Transition,
) *AdminHandler {
	return &AdminHandler{
		db:           db,
		requests:     requests,
		transitionUC: transitionUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type DecisionRequest struct {
	RequestID uint   `json:"request_id" binding:"required"`
	Action    string `json:"action" binding:"required"`
}

type UpdateCredentialsRequest struct {
	CurrentEmail string `json:"current_email" binding:"required"`
	NewEmail     string `json:"new_email"`
	NewPassword  string `json:"new_password"`
}

func (h *AdminHandler) decide(c *gin.Context, kind approvalDomain.Kind) {
	actorID := c.MustGet(middleware.ContextClientID).(uint)

	var req DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request ID and action are required.")
		return
	}

	action, err := approvalDomain.ParseAction(req.Action)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.transitionUC.Execute(
		c.Request.Context(), kind, req.RequestID, action, actorID,
	); err != nil {
		httperr.Respond(c, err)
		return
	}

	if action == approvalDomain.ActionApprove {
		httpresp.Message(c, "Request approved.")
		return
	}
	httpresp.Message(c, "Request rejected.")
}

// ======================================================
// MEMBERSHIP REQUESTS
// ======================================================

func (h *AdminHandler) ListMembershipRequests(c *gin.Context) {
	reqs, err := h.requests.ListPendingMemberships(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.MembershipRequestDTO, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, dto.MembershipRequestDTO{
			ID:        r.ID,
			Name:      r.Name,
			Email:     r.Email,
			Message:   r.Message,
			CreatedAt: r.CreatedAt,
		})
	}
	httpresp.List(c, out)
}

func (h *AdminHandler) DecideMembershipRequest(c *gin.Context) {
	h.decide(c, approvalDomain.KindMembership)
}

// ======================================================
// RECRUITMENT APPLICATIONS
// ======================================================

func (h *AdminHandler) ListRecruitmentApplications(c *gin.Context) {
	apps, err := h.requests.ListPendingRecruitments(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.RecruitmentApplicationDTO, 0, len(apps))
	for _, a := range apps {
		out = append(out, dto.RecruitmentApplicationDTO{
			ID:                 a.ID,
			Name:               a.Name,
			Email:              a.Email,
			ResumeURL:          a.ResumeURL,
			PhotoIDURL:         a.PhotoIDURL,
			BackgroundCheckURL: a.BackgroundCheckURL,
			CreatedAt:          a.CreatedAt,
		})
	}
	httpresp.List(c, out)
}

func (h *AdminHandler) DecideRecruitmentApplication(c *gin.Context) {
	h.decide(c, approvalDomain.KindRecruitment)
}

// ======================================================
// PROFILE UPDATE REQUESTS
// ======================================================

func (h *AdminHandler) ListProfileUpdateRequests(c *gin.Context) {
	reqs, err := h.requests.ListPendingProfileUpdates(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	out := make([]dto.ProfileUpdateRequestDTO, 0, len(reqs))
	for _, r := range reqs {
		item := dto.ProfileUpdateRequestDTO{
			ID:               r.ID,
			ClientID:         r.ClientID,
			RequestedChanges: r.RequestedChanges,
			CreatedAt:        r.CreatedAt,
		}

		var client models.Client
		if err := h.db.First(&client, r.ClientID).Error; err == nil {
			item.ClientName = client.Name
			item.ClientEmail = client.Email
		}
		out = append(out, item)
	}
	httpresp.List(c, out)
}

func (h *AdminHandler) DecideProfileUpdateRequest(c *gin.Context) {
	h.decide(c, approvalDomain.KindProfileUpdate)
}

// ======================================================
// POST /api/admin/update-credentials
// ======================================================

func (h *AdminHandler) UpdateCredentials(c *gin.Context) {
	var req UpdateCredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil || (req.NewEmail == "" && req.NewPassword == "") {
		httperr.BadRequest(c, "invalid_request",
			"Current email and either a new email or new password are required.")
		return
	}

	var admin models.Client
	if err := h.db.
		Where("email = ?", req.CurrentEmail).
		First(&admin).Error; err != nil {
		httperr.NotFoundStatus(c, "admin_not_found", "Admin user not found.")
		return
	}
	if !roles.Has(roles.Parse(admin.Role), roles.Admin) {
		httperr.NotFoundStatus(c, "admin_not_found", "Admin user not found.")
		return
	}

	updates := map[string]any{}
	if req.NewEmail != "" {
		updates["email"] = req.NewEmail
	}
	if req.NewPassword != "" {
		hash, err := crypto.HashPassword(req.NewPassword)
		if err != nil {
			httperr.InternalStatus(c, "password_hash_failed", "Could not update credentials.")
			return
		}
		updates["password_hash"] = hash
	}

	if err := h.db.
		Model(&models.Client{}).
		Where("id = ?", admin.ID).
		Updates(updates).Error; err != nil {
		if isDuplicateErr(err) {
			httperr.ConflictStatus(c, "email_in_use", "This email address is already in use.")
			return
		}
		httperr.InternalStatus(c, "credentials_update_failed", "Could not update credentials.")
		return
	}

	httpresp.Message(c, "Admin credentials updated successfully.")
}
