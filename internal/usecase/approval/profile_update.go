package approval

import (
	"context"
	"encoding/json"

	"github.com/ravenstudio/raven-community-api/internal/domain/approval"
	"github.com/ravenstudio/raven-community-api/internal/httperr"
)

// ProfilePatch is the shape of a profile-update change set. Pointer
// fields distinguish "not requested" from zero values: a patch is
// merged, never a full overwrite.
type ProfilePatch struct {
	Bio             *string `json:"bio"`
	ProfileImageURL *string `json:"profile_image_url"`
	IsProfilePublic *bool   `json:"is_profile_public"`
	IsImagePublic   *bool   `json:"is_image_public"`
}

func (uc *Transition) transitionProfileUpdate(
	ctx context.Context,
	requestID uint,
	action approval.Action,
	actorID uint,
) error {

	req, err := uc.requests.FindPendingProfileUpdate(ctx, requestID)
	if err != nil {
		return err
	}

	if action == approval.ActionApprove {
		var patch ProfilePatch
		if err := json.Unmarshal(req.RequestedChanges, &patch); err != nil {
			return httperr.Validation(
				"invalid_change_set",
				"The requested changes could not be parsed.",
			)
		}

		client, err := uc.clients.FindByID(ctx, req.ClientID)
		if err != nil {
			return err
		}

		if patch.Bio != nil {
			client.Bio = *patch.Bio
		}
		if patch.ProfileImageURL != nil {
			client.ProfileImageURL = *patch.ProfileImageURL
		}
		if patch.IsProfilePublic != nil {
			client.IsProfilePublic = *patch.IsProfilePublic
		}
		if patch.IsImagePublic != nil {
			client.IsImagePublic = *patch.IsImagePublic
		}

		if err := uc.clients.Update(ctx, client); err != nil {
			return err
		}
	}

	return uc.requests.CloseProfileUpdate(
		ctx, requestID, approval.Next(action), actorID, uc.now(),
	)
}
