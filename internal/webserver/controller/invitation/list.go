package invitation

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// List shows the pending invitations addressed to the session user's email
func (i *Controller) List(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	invitations, err := i.invitationsRepository.PendingByEmail(session.Email)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("invitation/index", fiber.Map{
		"Title":       "Invitations",
		"Invitations": invitations,
		"Session":     session,
	}, "layout")
}
