package team

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Update gathers information from the edit team form and updates the team's
// name and description
func (t *Controller) Update(c *fiber.Ctx) error {
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

	team.Name = c.FormValue("name")
	team.Description = c.FormValue("description")

	if errs := team.Validate(); len(errs) > 0 {
		return c.Render("team/edit", fiber.Map{
			"Title":   "Edit team",
			"Team":    team,
			"Session": session,
			"Errors":  errs,
		}, "layout")
	}

	if err := t.repository.Update(team); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/teams/" + team.Uuid)
}
