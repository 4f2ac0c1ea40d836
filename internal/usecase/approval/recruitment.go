package approval

import (
	"context"
	"fmt"

	"github.com/ravenstudio/raven-community-api/internal/crypto"
	"github.com/ravenstudio/raven-community-api/internal/domain/approval"
	"github.com/ravenstudio/raven-community-api/internal/domain/roles"
	"github.com/ravenstudio/raven-community-api/internal/httperr"
	"github.com/ravenstudio/raven-community-api/internal/models"
	"github.com/ravenstudio/raven-community-api/internal/notify"
	"github.com/ravenstudio/raven-community-api/internal/usecase/directory"
)

func (uc *Transition) transitionRecruitment(
	ctx context.Context,
	requestID uint,
	action approval.Action,
	actorID uint,
) error {

	app, err := uc.requests.FindPendingRecruitment(ctx, requestID)
	if err != nil {
		return err
	}

	if action == approval.ActionApprove {
		if err := uc.approveRecruitment(ctx, app); err != nil {
			return err
		}
	}

	return uc.requests.CloseRecruitment(
		ctx, requestID, approval.Next(action), actorID, uc.now(),
	)
}

// approveRecruitment grants A-TEAM and copies the application's
// social links onto the client row. New clients get a generated
// temporary credential, stored hashed.
func (uc *Transition) approveRecruitment(
	ctx context.Context,
	app *models.RecruitmentApplication,
) error {

	client, err := uc.clients.FindByEmail(ctx, app.Email)
	if err == nil {
		client.Role = roles.MergeSerialized(client.Role, roles.ATeam)
		copySocialLinks(client, app)
		return uc.clients.Update(ctx, client)
	}
	if !httperr.IsKind(err, httperr.KindNotFound) {
		return err
	}

	password := crypto.GeneratePassword()
	fresh, err := directory.BuildClient(app.Name, app.Email, password, roles.ATeam)
	if err != nil {
		return err
	}
	copySocialLinks(fresh, app)

	if err := uc.clients.Create(ctx, fresh); err != nil {
		return err
	}

	uc.sendBestEffort(ctx, notify.Message{
		To:      app.Email,
		From:    uc.mailFrom,
		Subject: "Welcome to the Raven A-Team!",
		Text: fmt.Sprintf(
			"Hi %s,\n\nYour application has been approved. Here is your temporary credential:\n\nUsername: %s\nPassword: %s\n\nPlease change your password after your first login.",
			app.Name, app.Email, password,
		),
	})
	return nil
}

func copySocialLinks(client *models.Client, app *models.RecruitmentApplication) {
	if app.FacebookURL != "" {
		client.FacebookURL = app.FacebookURL
	}
	if app.InstagramURL != "" {
		client.InstagramURL = app.InstagramURL
	}
	if app.TikTokURL != "" {
		client.TikTokURL = app.TikTokURL
	}
	if app.YouTubeURL != "" {
		client.YouTubeURL = app.YouTubeURL
	}
	if app.TwitterURL != "" {
		client.TwitterURL = app.TwitterURL
	}
}
