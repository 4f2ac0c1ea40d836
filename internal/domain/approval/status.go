package approval

import "github.com/ravenstudio/raven-community-api/internal/httperr"

// ===============================
// Pending-request state machine
// ===============================

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type Action string

const (
	ActionApprove Action = "APPROVE"
	ActionReject  Action = "REJECT"
)

// Kind selects which pending-request table a transition operates on.
type Kind string

const (
	KindMembership    Kind = "membership"
	KindRecruitment   Kind = "recruitment"
	KindProfileUpdate Kind = "profile_update"
)

// ParseAction validates the caller-supplied action string.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionApprove, ActionReject:
		return Action(s), nil
	default:
		return "", httperr.Validation("invalid_action", "Action must be APPROVE or REJECT.")
	}
}

// Terminal reports whether a status accepts no further transitions.
func Terminal(s Status) bool {
	return s == StatusApproved || s == StatusRejected
}

// Next resolves the terminal status an action leads to from PENDING.
func Next(a Action) Status {
	if a == ActionApprove {
		return StatusApproved
	}
	return StatusRejected
}
