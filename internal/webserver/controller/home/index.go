package home

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Index shows the session user's landing page: their teams, the unfinished
// tasks assigned to them and their pending invitations
func (h *Controller) Index(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	teams, err := h.teamsRepository.ListByUser(session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	assigned, err := h.tasksRepository.AssignedTo(session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	invitations, err := h.invitationsRepository.PendingByEmail(session.Email)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("home/index", fiber.Map{
		"Title":       "Home",
		"Teams":       teams,
		"Assigned":    assigned,
		"Invitations": invitations,
		"Session":     session,
	}, "layout")
}
