package audit

import "github.com/ravenstudio/raven-community-api/internal/logger"

type Event struct {
	ActorID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher writes audit rows off the request path. Events are
// dropped when the queue is full: auditing never blocks or fails an
// API call.
type Dispatcher struct {
	logger *Logger
	log    *logger.Logger
	queue  chan Event
}

func NewDispatcher(auditLogger *Logger, log *logger.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: auditLogger,
		log:    log.With("component", "audit"),
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.ActorID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Error("audit write failed", "action", ev.Action, "error", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}
