package invitation

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Decline marks a pending invitation as declined. Terminal states are
// immutable: declining an invitation that was already accepted or declined
// fails instead of silently overwriting its status.
func (i *Controller) Decline(c *fiber.Ctx) error {
	invitation, err := i.invitationsRepository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if invitation == nil {
		return fiber.NewError(fiber.StatusNotFound, "Invitation not found")
	}

	if err := i.invitationsRepository.Decline(invitation.Uuid); err != nil {
		if errors.Is(err, model.ErrNoLongerPending) {
			return fiber.NewError(fiber.StatusConflict, "Invitation is no longer pending")
		}
		log.Printf("error declining invitation: %v\n", err)
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/invitations")
}
