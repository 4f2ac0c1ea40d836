package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/ravenstudio/raven-community-api/internal/domain/booking"
	"github.com/ravenstudio/raven-community-api/internal/httperr"
	"github.com/ravenstudio/raven-community-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Conflict fast path
// --------------------------------------------------

func (r *AppointmentGormRepository) FindByStartTime(
	ctx context.Context,
	start time.Time,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("start_time = ?", start.UTC()).
		First(&ap).Error; err != nil {
		if IsNotFound(err) {
			return nil, httperr.NotFound("appointment_not_found", "Appointment not found.")
		}
		return nil, httperr.Internal("appointment_lookup_failed", err)
	}
	return &ap, nil
}

// --------------------------------------------------
// Create
// --------------------------------------------------

func (r *AppointmentGormRepository) Create(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if IsDuplicate(err) {
			return httperr.Conflict(
				"slot_taken",
				"This time slot was just booked. Please select another time.",
			)
		}
		return httperr.Internal("appointment_create_failed", err)
	}
	return nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListStartTimesBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]time.Time, error) {

	var starts []time.Time
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("start_time >= ? AND start_time < ?", start.UTC(), end.UTC()).
		Order("start_time ASC").
		Pluck("start_time", &starts).Error; err != nil {
		return nil, httperr.Internal("availability_query_failed", err)
	}
	return starts, nil
}

// --------------------------------------------------
// Client history
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForClient(
	ctx context.Context,
	clientID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("start_time DESC").
		Find(&apps).Error; err != nil {
		return nil, httperr.Internal("appointment_list_failed", err)
	}
	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
