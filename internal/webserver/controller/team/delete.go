package team

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Delete removes a team along with its members and tasks. Invitations stay as
// a historical record and fail with an invalid data error if someone tries to
// accept them afterwards.
func (t *Controller) Delete(c *fiber.Ctx) error {
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

	if err := t.repository.Delete(team.Uuid); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/teams")
}
