package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ravenstudio/raven-community-api/internal/dto"
	"github.com/ravenstudio/raven-community-api/internal/httperr"
	"github.com/ravenstudio/raven-community-api/internal/httpresp"
	"github.com/ravenstudio/raven-community-api/internal/middleware"
	"github.com/ravenstudio/raven-community-api/internal/models"
	"github.com/ravenstudio/raven-community-api/internal/usecase/booking"
	"github.com/ravenstudio/raven-community-api/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	db             *gorm.DB
	bookSlotUC     *booking.BookSlot
	availabilityUC *booking.GetAvailability
}

func NewBookingHandler(
	db *gorm.DB,
	bookSlotUC *booking.BookSlot,
	availabilityUC *booking.GetAvailability,
) *BookingHandler {
	return &BookingHandler{
		db:             db,
		bookSlotUC:     bookSlotUC,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	ClientName      string `json:"client_name" binding:"required"`
	ClientEmail     string `json:"client_email" binding:"required"`
	Service         string `json:"service" binding:"required"`
	AppointmentTime string `json:"appointment_time" binding:"required"`
	Password        string `json:"password"`
}

// ======================================================
// GET /api/availability?date=YYYY-MM-DD
// ======================================================

func (h *BookingHandler) GetAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date query parameter is required.")
		return
	}

	date, err := parseUTCDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, slots)
}

// ======================================================
// POST /api/book-appointment
// ======================================================

func (h *BookingHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing required fields.")
		return
	}

	if !validators.IsEmailShaped(req.ClientEmail) {
		httperr.BadRequest(c, "invalid_email", "A valid email address is required.")
		return
	}

	start, err := parseStartTime(req.AppointmentTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "Appointment time must be RFC 3339.")
		return
	}

	ap, err := h.bookSlotUC.Execute(c.Request.Context(), booking.BookSlotInput{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Service:     req.Service,
		StartTime:   start,
		Password:    req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Message(c, fmt.Sprintf(
		"Appointment confirmed for %s on %s.",
		req.ClientName,
		ap.StartTime.Format("Mon, 2 Jan 2006 at 15:04 MST"),
	))
}

// ======================================================
// GET /api/appointments (authenticated)
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextClientID).(uint)

	var apps []models.Appointment
	if err := h.db.
		Where("client_id = ?", clientID).
		Order("start_time DESC").
		Find(&apps).Error; err != nil {
		httperr.InternalStatus(c, "appointment_list_failed", "Could not fetch appointments.")
		return
	}

	out := make([]dto.AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, dto.AppointmentListDTO{
			ID:        ap.ID,
			Service:   ap.Service,
			StartTime: ap.StartTime,
			EndTime:   ap.EndTime,
		})
	}

	httpresp.List(c, out)
}
