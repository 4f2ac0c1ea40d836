package approval

import (
	"context"
	"time"

	"github.com/ravenstudio/raven-community-api/internal/audit"
	"github.com/ravenstudio/raven-community-api/internal/domain/approval"
	directoryDomain "github.com/ravenstudio/raven-community-api/internal/domain/directory"
	"github.com/ravenstudio/raven-community-api/internal/httperr"
	"github.com/ravenstudio/raven-community-api/internal/logger"
	"github.com/ravenstudio/raven-community-api/internal/notify"
)

// ======================================================
// USE CASE
// ======================================================

// Transition moves one pending request to a terminal status. The
// PENDING-filtered load and close make a decided request look like a
// missing one, which is the whole double-processing guard. Approval
// side effects run before the status write and are not wrapped in a
// transaction with it: a crash in between leaves the request PENDING
// with the side effect already applied, so side effects are
// at-least-once and written to be safe under re-application (role
// merge is idempotent, client creation hits the email unique
// constraint).
type Transition struct {
	requests approval.Repository
	clients  directoryDomain.Repository
	mailer   notify.Mailer
	mailFrom string
	audit    *audit.Dispatcher
	log      *logger.Logger
	now      func() time.Time
}

func NewTransition(
	requests approval.Repository,
	clients directoryDomain.Repository,
	mailer notify.Mailer,
	mailFrom string,
	auditDispatcher *audit.Dispatcher,
	log *logger.Logger,
) *Transition {
	return &Transition{
		requests: requests,
		clients:  clients,
		mailer:   mailer,
		mailFrom: mailFrom,
		audit:    auditDispatcher,
		log:      log.With("usecase", "approval_transition"),
		now:      time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Transition) Execute(
	ctx context.Context,
	kind approval.Kind,
	requestID uint,
	action approval.Action,
	actorID uint,
) error {

	var err error
	switch kind {
	case approval.KindMembership:
		err = uc.transitionMembership(ctx, requestID, action, actorID)
	case approval.KindRecruitment:
		err = uc.transitionRecruitment(ctx, requestID, action, actorID)
	case approval.KindProfileUpdate:
		err = uc.transitionProfileUpdate(ctx, requestID, action, actorID)
	default:
		return httperr.Validation("invalid_kind", "Unknown request kind.")
	}

	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   string(kind) + "_" + decisionName(action),
		Entity:   string(kind) + "_request",
		EntityID: &requestID,
	})
	return nil
}

func decisionName(a approval.Action) string {
	if a == approval.ActionApprove {
		return "approved"
	}
	return "rejected"
}

// sendBestEffort delivers a notification without letting a transport
// failure surface to the admin.
func (uc *Transition) sendBestEffort(ctx context.Context, msg notify.Message) {
	if err := uc.mailer.Send(ctx, msg); err != nil {
		uc.log.Warn("notification failed",
			"to", msg.To,
			"subject", msg.Subject,
			"error", err,
		)
	}
}
