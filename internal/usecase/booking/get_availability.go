package booking

import (
	"context"
	"time"

	"github.com/ravenstudio/raven-community-api/internal/cache"
	"github.com/ravenstudio/raven-community-api/internal/config"
	domain "github.com/ravenstudio/raven-community-api/internal/domain/booking"
	"github.com/ravenstudio/raven-community-api/internal/domain/schedule"
)

type GetAvailability struct {
	repo     domain.Repository
	business config.BusinessConfig
	cache    *cache.AvailabilityCache
	now      func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	cfg *config.Config,
	availCache *cache.AvailabilityCache,
) *GetAvailability {
	return &GetAvailability{
		repo:     repo,
		business: cfg.Business,
		cache:    availCache,
		now:      time.Now,
	}
}

// Execute returns the open "HH:00" slots for a UTC date.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date time.Time,
) ([]string, error) {

	dateKey := date.UTC().Format("2006-01-02")
	if slots, ok := uc.cache.Get(ctx, dateKey); ok {
		return slots, nil
	}

	dayStart, dayEnd := schedule.DayRange(date)
	starts, err := uc.repo.ListStartTimesBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	slots := schedule.AvailableSlots(
		date,
		schedule.BusinessHours{
			OpenHour:  uc.business.OpenHour,
			CloseHour: uc.business.CloseHour,
		},
		schedule.BookedHours(starts),
		uc.now(),
	)

	uc.cache.Set(ctx, dateKey, slots)
	return slots, nil
}
