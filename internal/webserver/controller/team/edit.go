package team

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Edit renders the edit team form
func (t *Controller) Edit(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	team, err := t.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if team == nil {
		return fiber.ErrNotFound
	}

	if role, ok := t.repository.MemberRole(team.ID, session.ID); !ok || role != model.TeamRoleAdmin {
		return fiber.ErrForbidden
	}

	return c.Render("team/edit", fiber.Map{
		"Title":   "Edit team",
		"Team":    team,
		"Session": session,
		"Errors":  map[string]string{},
	}, "layout")
}
