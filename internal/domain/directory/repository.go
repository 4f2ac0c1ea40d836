package directory

import (
	"context"

	"github.com/ravenstudio/raven-community-api/internal/models"
)

// Repository is the client storage port. FindByEmail is an exact,
// case-sensitive match; Create must surface the email unique
// violation as httperr.Conflict.
type Repository interface {
	FindByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.Client, error)

	Create(
		ctx context.Context,
		client *models.Client,
	) error

	Update(
		ctx context.Context,
		client *models.Client,
	) error
}
