package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ravenstudio/raven-community-api/internal/domain/approval"
	"github.com/ravenstudio/raven-community-api/internal/httperr"
	"github.com/ravenstudio/raven-community-api/internal/models"
)

// RequestGormRepository serves all three pending-request tables.
// Every lookup and close filters on status = 'PENDING'; an id in a
// terminal state behaves exactly like a missing id.
type RequestGormRepository struct {
	db *gorm.DB
}

func NewRequestGormRepository(db *gorm.DB) *RequestGormRepository {
	return &RequestGormRepository{db: db}
}

var errPendingNotFound = httperr.NotFound(
	"request_not_found",
	"Pending request not found or already handled.",
)

// --------------------------------------------------
// Membership
// --------------------------------------------------

func (r *RequestGormRepository) FindPendingMembership(
	ctx context.Context,
	id uint,
) (*models.MembershipRequest, error) {

	var req models.MembershipRequest
	if err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, approval.StatusPending).
		First(&req).Error; err != nil {
		if IsNotFound(err) {
			return nil, errPendingNotFound
		}
		return nil, httperr.Internal("request_lookup_failed", err)
	}
	return &req, nil
}

func (r *RequestGormRepository) ListPendingMemberships(
	ctx context.Context,
) ([]models.MembershipRequest, error) {

	var reqs []models.MembershipRequest
	if err := r.db.WithContext(ctx).
		Where("status = ?", approval.StatusPending).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, httperr.Internal("request_list_failed", err)
	}
	return reqs, nil
}

func (r *RequestGormRepository) CloseMembership(
	ctx context.Context,
	id uint,
	status approval.Status,
	reviewerID uint,
	reviewedAt time.Time,
) error {
	return r.closePending(ctx, &models.MembershipRequest{}, id, status, reviewerID, reviewedAt)
}

// --------------------------------------------------
// Recruitment
// --------------------------------------------------

func (r *RequestGormRepository) FindPendingRecruitment(
	ctx context.Context,
	id uint,
) (*models.RecruitmentApplication, error) {

	var app models.RecruitmentApplication
	if err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, approval.StatusPending).
		First(&app).Error; err != nil {
		if IsNotFound(err) {
			return nil, errPendingNotFound
		}
		return nil, httperr.Internal("request_lookup_failed", err)
	}
	return &app, nil
}

func (r *RequestGormRepository) ListPendingRecruitments(
	ctx context.Context,
) ([]models.RecruitmentApplication, error) {

	var apps []models.RecruitmentApplication
	if err := r.db.WithContext(ctx).
		Where("status = ?", approval.StatusPending).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		return nil, httperr.Internal("request_list_failed", err)
	}
	return apps, nil
}

func (r *RequestGormRepository) CloseRecruitment(
	ctx context.Context,
	id uint,
	status approval.Status,
	reviewerID uint,
	reviewedAt time.Time,
) error {
	return r.closePending(ctx, &models.RecruitmentApplication{}, id, status, reviewerID, reviewedAt)
}

// --------------------------------------------------
// Profile update
// --------------------------------------------------

func (r *RequestGormRepository) FindPendingProfileUpdate(
	ctx context.Context,
	id uint,
) (*models.ProfileUpdateRequest, error) {

	var req models.ProfileUpdateRequest
	if err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, approval.StatusPending).
		First(&req).Error; err != nil {
		if IsNotFound(err) {
			return nil, errPendingNotFound
		}
		return nil, httperr.Internal("request_lookup_failed", err)
	}
	return &req, nil
}

func (r *RequestGormRepository) ListPendingProfileUpdates(
	ctx context.Context,
) ([]models.ProfileUpdateRequest, error) {

	var reqs []models.ProfileUpdateRequest
	if err := r.db.WithContext(ctx).
		Where("status = ?", approval.StatusPending).
		Order("created_at ASC").
		Find(&reqs).Error; err != nil {
		return nil, httperr.Internal("request_list_failed", err)
	}
	return reqs, nil
}

func (r *RequestGormRepository) CloseProfileUpdate(
	ctx context.Context,
	id uint,
	status approval.Status,
	reviewerID uint,
	reviewedAt time.Time,
) error {
	return r.closePending(ctx, &models.ProfileUpdateRequest{}, id, status, reviewerID, reviewedAt)
}

// --------------------------------------------------
// Shared close
// --------------------------------------------------

// closePending writes the terminal status guarded by the PENDING
// filter. Zero rows affected means the request was decided in the
// meantime (or never existed) and surfaces as NotFound.
func (r *RequestGormRepository) closePending(
	ctx context.Context,
	model any,
	id uint,
	status approval.Status,
	reviewerID uint,
	reviewedAt time.Time,
) error {

	res := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND status = ?", id, approval.StatusPending).
		Updates(map[string]any{
			"status":      string(status),
			"reviewer_id": reviewerID,
			"reviewed_at": reviewedAt,
		})

	if res.Error != nil {
		return httperr.Internal("request_close_failed", res.Error)
	}
	if res.RowsAffected == 0 {
		return errPendingNotFound
	}
	return nil
}

// Compile-time check
var _ approval.Repository = (*RequestGormRepository)(nil)
