package directory

import (
	"context"

	"github.com/ravenstudio/raven-community-api/internal/crypto"
	domain "github.com/ravenstudio/raven-community-api/internal/domain/directory"
	"github.com/ravenstudio/raven-community-api/internal/domain/roles"
	"github.com/ravenstudio/raven-community-api/internal/httperr"
	"github.com/ravenstudio/raven-community-api/internal/models"
)

// ======================================================
// USE CASE
// ======================================================

// ClientDirectory resolves a client by email or creates one. The
// lookup-then-insert pair is not atomic; the email unique constraint
// is the real guard and a losing racer gets Conflict from Create.
type ClientDirectory struct {
	repo domain.Repository
}

func NewClientDirectory(repo domain.Repository) *ClientDirectory {
	return &ClientDirectory{repo: repo}
}

// ResolveOrCreate returns the existing client for email unchanged,
// or inserts a new one with a fresh referral code. passwordPlain may
// be empty: guest clients carry no credential.
func (d *ClientDirectory) ResolveOrCreate(
	ctx context.Context,
	name string,
	email string,
	passwordPlain string,
) (*models.Client, error) {

	client, err := d.repo.FindByEmail(ctx, email)
	if err == nil {
		return client, nil
	}
	if !httperr.IsKind(err, httperr.KindNotFound) {
		return nil, err
	}

	fresh, err := BuildClient(name, email, passwordPlain, roles.Guest)
	if err != nil {
		return nil, err
	}

	if err := d.repo.Create(ctx, fresh); err != nil {
		return nil, err
	}
	return fresh, nil
}

// BuildClient assembles an unsaved client row: referral code, role,
// and the bcrypt hash when a password was supplied. Shared with the
// approval flow, which creates members with a generated credential.
func BuildClient(
	name string,
	email string,
	passwordPlain string,
	role string,
) (*models.Client, error) {

	client := &models.Client{
		Name:         name,
		Email:        email,
		Role:         role,
		ReferralCode: crypto.GenerateReferralCode(),
	}

	if passwordPlain != "" {
		hash, err := crypto.HashPassword(passwordPlain)
		if err != nil {
			return nil, httperr.Internal("password_hash_failed", err)
		}
		client.PasswordHash = &hash
	}

	return client, nil
}
