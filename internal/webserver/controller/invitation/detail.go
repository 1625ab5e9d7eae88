package invitation

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Detail renders the acceptance page of an invitation, with its accept and
// decline buttons. Expiry is only enforced here; the acceptance endpoint itself
// does not check it, so an expired link simply never shows the buttons.
func (i *Controller) Detail(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	invitation, err := i.invitationsRepository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if invitation == nil {
		return fiber.NewError(fiber.StatusNotFound, "Invitation not found")
	}

	if invitation.Team == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid invitation data")
	}

	if invitation.Status != model.InvitationPending {
		return fiber.NewError(fiber.StatusBadRequest, "Invitation is no longer pending")
	}

	if invitation.Expired() {
		return fiber.NewError(fiber.StatusBadRequest, "This invitation has expired")
	}

	return c.Render("invitation/detail", fiber.Map{
		"Title":      "Invitation to " + invitation.Team.Name,
		"Invitation": invitation,
		"Team":       invitation.Team,
		"Session":    session,
	}, "layout")
}
