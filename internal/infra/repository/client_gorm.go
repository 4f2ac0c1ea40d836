package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/ravenstudio/raven-community-api/internal/domain/directory"
	"github.com/ravenstudio/raven-community-api/internal/httperr"
	"github.com/ravenstudio/raven-community-api/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) FindByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		if IsNotFound(err) {
			return nil, httperr.NotFound("client_not_found", "Client not found.")
		}
		return nil, httperr.Internal("client_lookup_failed", err)
	}
	return &client, nil
}

func (r *ClientGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&client).Error; err != nil {
		if IsNotFound(err) {
			return nil, httperr.NotFound("client_not_found", "Client not found.")
		}
		return nil, httperr.Internal("client_lookup_failed", err)
	}
	return &client, nil
}

func (r *ClientGormRepository) Create(
	ctx context.Context,
	client *models.Client,
) error {

	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		if IsDuplicate(err) {
			return httperr.Conflict(
				"email_in_use",
				"A client with this email already exists.",
			)
		}
		return httperr.Internal("client_create_failed", err)
	}
	return nil
}

func (r *ClientGormRepository) Update(
	ctx context.Context,
	client *models.Client,
) error {

	if err := r.db.WithContext(ctx).Save(client).Error; err != nil {
		if IsDuplicate(err) {
			return httperr.Conflict(
				"email_in_use",
				"A client with this email already exists.",
			)
		}
		return httperr.Internal("client_update_failed", err)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ClientGormRepository)(nil)
