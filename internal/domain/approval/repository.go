package approval

import (
	"context"
	"time"

	"github.com/ravenstudio/raven-community-api/internal/models"
)

// Repository is the pending-request storage port. The FindPending*
// lookups filter on status = PENDING, so a request that was already
// decided is indistinguishable from one that never existed — that
// filter is the double-processing guard. Close* writes the terminal
// status with the same PENDING filter and must return
// httperr.NotFound when no row matched.
type Repository interface {
	// -------- Membership --------
	FindPendingMembership(
		ctx context.Context,
		id uint,
	) (*models.MembershipRequest, error)

	ListPendingMemberships(
		ctx context.Context,
	) ([]models.MembershipRequest, error)

	CloseMembership(
		ctx context.Context,
		id uint,
		status Status,
		reviewerID uint,
		reviewedAt time.Time,
	) error

	// -------- Recruitment --------
	FindPendingRecruitment(
		ctx context.Context,
		id uint,
	) (*models.RecruitmentApplication, error)

	ListPendingRecruitments(
		ctx context.Context,
	) ([]models.RecruitmentApplication, error)

	CloseRecruitment(
		ctx context.Context,
		id uint,
		status Status,
		reviewerID uint,
		reviewedAt time.Time,
	) error

	// -------- Profile update --------
	FindPendingProfileUpdate(
		ctx context.Context,
		id uint,
	) (*models.ProfileUpdateRequest, error)

	ListPendingProfileUpdates(
		ctx context.Context,
	) ([]models.ProfileUpdateRequest, error)

	CloseProfileUpdate(
		ctx context.Context,
		id uint,
		status Status,
		reviewerID uint,
		reviewedAt time.Time,
	) error
}
