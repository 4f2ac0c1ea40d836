package approval

import (
	"context"
	"fmt"

	"github.com/ravenstudio/raven-community-api/internal/crypto"
	"github.com/ravenstudio/raven-community-api/internal/domain/approval"
	"github.com/ravenstudio/raven-community-api/internal/domain/roles"
	"github.com/ravenstudio/raven-community-api/internal/httperr"
	"github.com/ravenstudio/raven-community-api/internal/notify"
	"github.com/ravenstudio/raven-community-api/internal/usecase/directory"
)

func (uc *Transition) transitionMembership(
	ctx context.Context,
	requestID uint,
	action approval.Action,
	actorID uint,
) error {

	req, err := uc.requests.FindPendingMembership(ctx, requestID)
	if err != nil {
		return err
	}

	if action == approval.ActionApprove {
		if err := uc.approveMembership(ctx, req.Name, req.Email); err != nil {
			return err
		}
	}

	return uc.requests.CloseMembership(
		ctx, requestID, approval.Next(action), actorID, uc.now(),
	)
}

// approveMembership grants MEMBER to an existing client or creates a
// fresh one with a generated credential.
func (uc *Transition) approveMembership(
	ctx context.Context,
	name string,
	email string,
) error {

	client, err := uc.clients.FindByEmail(ctx, email)
	if err == nil {
		client.Role = roles.MergeSerialized(client.Role, roles.Member)
		if err := uc.clients.Update(ctx, client); err != nil {
			return err
		}

		uc.sendBestEffort(ctx, notify.Message{
			To:      client.Email,
			From:    uc.mailFrom,
			Subject: "Your Raven membership is approved",
			Text: fmt.Sprintf(
				"Hi %s,\n\nYour membership request has been approved. Welcome to the Raven community!",
				client.Name,
			),
		})
		return nil
	}
	if !httperr.IsKind(err, httperr.KindNotFound) {
		return err
	}

	password := crypto.GeneratePassword()
	fresh, err := directory.BuildClient(name, email, password, roles.Member)
	if err != nil {
		return err
	}
	if err := uc.clients.Create(ctx, fresh); err != nil {
		return err
	}

	uc.sendBestEffort(ctx, notify.Message{
		To:      email,
		From:    uc.mailFrom,
		Subject: "Welcome to the Raven Community!",
		Text: fmt.Sprintf(
			"Hi %s,\n\nYour account has been approved. Here are your login credentials:\n\nUsername: %s\nPassword: %s\n\nPlease change your password after your first login.",
			name, email, password,
		),
	})
	return nil
}
