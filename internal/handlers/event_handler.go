package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ravenstudio/raven-community-api/internal/crypto"
	"github.com/ravenstudio/raven-community-api/internal/domain/roles"
	"github.com/ravenstudio/raven-community-api/internal/dto"
	"github.com/ravenstudio/raven-community-api/internal/httperr"
	"github.com/ravenstudio/raven-community-api/internal/httpresp"
	"github.com/ravenstudio/raven-community-api/internal/middleware"
	"github.com/ravenstudio/raven-community-api/internal/models"
	"github.com/ravenstudio/raven-community-api/internal/usecase/directory"
)

// ======================================================
// HANDLER
// ======================================================

type EventHandler struct {
	db      *gorm.DB
	clients *directory.ClientDirectory
}

func NewEventHandler(db *gorm.DB, clients *directory.ClientDirectory) *EventHandler {
	return &EventHandler{db: db, clients: clients}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateEventRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	EventDate    string `json:"event_date" binding:"required"`
	Location     string `json:"location" binding:"required"`
	TotalTickets int    `json:"total_tickets" binding:"required"`
	ImageURL     string `json:"image_url"`
}

type EnrollGuestRequest struct {
	EventID        uint   `json:"event_id" binding:"required"`
	GuestName      string `json:"guest_name" binding:"required"`
	GuestEmail     string `json:"guest_email" binding:"required"`
	AffiliateEmail string `json:"affiliate_email" binding:"required"`
}

type EventBookingDTO struct {
	Name      string    `json:"name"`
	EventDate time.Time `json:"event_date"`
}

// ======================================================
// GET /api/events (authenticated)
// ======================================================

func (h *EventHandler) ListMyBookings(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	var bookings []EventBookingDTO
	if err := h.db.
		Model(&models.EventBooking{}).
		Select("events.name", "events.event_date").
		Joins("JOIN events ON events.id = event_bookings.event_id").
		Where("event_bookings.client_id = ?", clientID).
		Order("events.event_date DESC").
		Scan(&bookings).Error; err != nil {
		httperr.InternalStatus(c, "event_list_failed", "Could not fetch event bookings.")
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// POST /api/events (admin)
// ======================================================

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required fields.")
		return
	}

	eventDate, err := time.Parse(time.RFC3339, req.EventDate)
	if err != nil {
		if eventDate, err = parseUTCDate(req.EventDate); err != nil {
			httperr.BadRequest(c, "invalid_date", "Event date must be RFC 3339 or YYYY-MM-DD.")
			return
		}
	}

	event := models.Event{
		Name:         req.Name,
		Description:  req.Description,
		EventDate:    eventDate,
		Location:     req.Location,
		TotalTickets: req.TotalTickets,
		ImageURL:     req.ImageURL,
	}
	if err := h.db.Create(&event).Error; err != nil {
		httperr.InternalStatus(c, "event_create_failed", "Could not create the event.")
		return
	}

	httpresp.Created(c, event)
}

// ======================================================
// POST /api/enroll-guest
// ======================================================

// EnrollGuest lets an affiliate book a guest onto an event. The
// guest is created on the fly with an unusable placeholder
// credential; the composite unique index on (client_id, event_id)
// rejects a second enrollment.
func (h *EventHandler) EnrollGuest(c *gin.Context) {
	var req EnrollGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required fields.")
		return
	}

	var affiliate models.Client
	if err := h.db.
		Where("email = ?", req.AffiliateEmail).
		First(&affiliate).Error; err != nil {
		httperr.NotFoundStatus(c, "affiliate_not_found", "Affiliate not found.")
		return
	}
	affiliateRoles := roles.Parse(affiliate.Role)
	if !roles.Has(affiliateRoles, roles.ATeam) && !roles.Has(affiliateRoles, roles.Admin) {
		httperr.NotFoundStatus(c, "affiliate_not_found", "Affiliate not found.")
		return
	}

	guest, err := h.clients.ResolveOrCreate(
		c.Request.Context(),
		req.GuestName,
		req.GuestEmail,
		crypto.GeneratePassword(),
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	booking := models.EventBooking{
		ClientID:      guest.ID,
		EventID:       req.EventID,
		TicketsBooked: 1,
	}
	if err := h.db.Create(&booking).Error; err != nil {
		if isDuplicateErr(err) {
			httperr.ConflictStatus(c, "already_enrolled",
				"This guest is already enrolled in this event.")
			return
		}
		httperr.InternalStatus(c, "enrollment_failed", "Could not enroll the guest.")
		return
	}

	if err := h.db.
		Model(&models.Event{}).
		Where("id = ?", req.EventID).
		UpdateColumn("tickets_sold", gorm.Expr("tickets_sold + 1")).Error; err != nil {
		httperr.InternalStatus(c, "enrollment_failed", "Could not enroll the guest.")
		return
	}

	reward := models.ReferralReward{
		ReferrerID: affiliate.ID,
		ReferredID: guest.ID,
	}
	if err := h.db.Create(&reward).Error; err != nil {
		httperr.InternalStatus(c, "enrollment_failed", "Could not enroll the guest.")
		return
	}

	httpresp.Message(c, "Guest enrolled successfully!")
}

// ======================================================
// GET /api/leaderboard?eventId=
// ======================================================

func (h *EventHandler) Leaderboard(c *gin.Context) {
	eventID := c.Query("eventId")
	if eventID == "" {
		httperr.BadRequest(c, "missing_event_id", "eventId parameter is required.")
		return
	}

	type row struct {
		AffiliateID   uint
		AffiliateName string
		ReferralCount int
	}

	var rows []row
	if err := h.db.
		Model(&models.ReferralReward{}).
		Select(
			"clients.id AS affiliate_id",
			"clients.name AS affiliate_name",
			"COUNT(referral_rewards.id) AS referral_count",
		).
		Joins("JOIN clients ON clients.id = referral_rewards.referrer_id").
		Joins("JOIN event_bookings ON event_bookings.client_id = referral_rewards.referred_id").
		Where("event_bookings.event_id = ?", eventID).
		Group("clients.id, clients.name").
		Order("referral_count DESC").
		Scan(&rows).Error; err != nil {
		httperr.InternalStatus(c, "leaderboard_failed", "Could not fetch the leaderboard.")
		return
	}

	out := make([]dto.LeaderboardEntryDTO, 0, len(rows))
	for i, r := range rows {
		out = append(out, dto.LeaderboardEntryDTO{
			Rank:          i + 1,
			AffiliateID:   r.AffiliateID,
			AffiliateName: r.AffiliateName,
			ReferralCount: r.ReferralCount,
		})
	}

	httpresp.List(c, out)
}
