package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/ravenstudio/raven-community-api/internal/audit"
	"github.com/ravenstudio/raven-community-api/internal/cache"
	"github.com/ravenstudio/raven-community-api/internal/config"
	domain "github.com/ravenstudio/raven-community-api/internal/domain/booking"
	"github.com/ravenstudio/raven-community-api/internal/httperr"
	"github.com/ravenstudio/raven-community-api/internal/logger"
	"github.com/ravenstudio/raven-community-api/internal/models"
	"github.com/ravenstudio/raven-community-api/internal/notify"
	"github.com/ravenstudio/raven-community-api/internal/usecase/directory"
)

// ======================================================
// INPUT
// ======================================================

type BookSlotInput struct {
	ClientName  string
	ClientEmail string
	Service     string
	StartTime   time.Time

	// Optional; booking never requires an account.
	Password string
}

// ======================================================
// USE CASE
// ======================================================

type BookSlot struct {
	clients  *directory.ClientDirectory
	repo     domain.Repository
	business config.BusinessConfig
	mailer   notify.Mailer
	mailFrom string
	cache    *cache.AvailabilityCache
	audit    *audit.Dispatcher
	log      *logger.Logger
}

func NewBookSlot(
	clients *directory.ClientDirectory,
	repo domain.Repository,
	cfg *config.Config,
	mailer notify.Mailer,
	availCache *cache.AvailabilityCache,
	auditDispatcher *audit.Dispatcher,
	log *logger.Logger,
) *BookSlot {
	return &BookSlot{
		clients:  clients,
		repo:     repo,
		business: cfg.Business,
		mailer:   mailer,
		mailFrom: cfg.MailFrom,
		cache:    availCache,
		audit:    auditDispatcher,
		log:      log.With("usecase", "book_slot"),
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookSlot) Execute(
	ctx context.Context,
	in BookSlotInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Client (resolve or create)
	// --------------------------------------------------
	client, err := uc.clients.ResolveOrCreate(ctx, in.ClientName, in.ClientEmail, in.Password)
	if err != nil {
		return nil, err
	}

	start := in.StartTime.UTC()
	end := start.Add(time.Duration(uc.business.SlotDurationMinutes) * time.Minute)

	// --------------------------------------------------
	// 2. Fast-path conflict check (advisory only)
	// --------------------------------------------------
	if _, err := uc.repo.FindByStartTime(ctx, start); err == nil {
		return nil, httperr.Conflict(
			"slot_taken",
			"This time slot was just booked. Please select another time.",
		)
	} else if !httperr.IsKind(err, httperr.KindNotFound) {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Insert — the unique index on start_time decides races
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:  client.ID,
		Service:   in.Service,
		StartTime: start,
		EndTime:   end,
	}
	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, start.Format("2006-01-02"))

	// --------------------------------------------------
	// 4. Best-effort confirmation; failure never voids the booking
	// --------------------------------------------------
	if err := uc.mailer.Send(ctx, notify.Message{
		To:      client.Email,
		From:    uc.mailFrom,
		Subject: "Your appointment is confirmed",
		Text: fmt.Sprintf(
			"Hi %s,\n\nYour %s appointment is confirmed for %s.\n\nSee you then!",
			client.Name,
			in.Service,
			start.Format("Monday, 2 January 2006 at 15:04 MST"),
		),
	}); err != nil {
		uc.log.Warn("confirmation email failed",
			"client_id", client.ID,
			"error", err,
		)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &client.ID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
