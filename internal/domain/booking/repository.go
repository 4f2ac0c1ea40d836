package booking

import (
	"context"
	"time"

	"github.com/ravenstudio/raven-community-api/internal/models"
)

// Repository is the appointment storage port. The calendar is one
// shared resource: start times are globally unique across clients.
type Repository interface {
	// -------- Conflict fast path --------
	FindByStartTime(
		ctx context.Context,
		start time.Time,
	) (*models.Appointment, error)

	// -------- Create --------
	Create(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Availability --------
	ListStartTimesBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]time.Time, error)

	// -------- Client history --------
	ListForClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)
}
