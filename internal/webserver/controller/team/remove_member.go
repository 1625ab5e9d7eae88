package team

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// RemoveMember removes a user from the team. The last team admin cannot be
// removed, so a team never ends up unmanageable.
func (t *Controller) RemoveMember(c *fiber.Ctx) error {
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

	user, err := t.usersRepository.FindByUuid(c.FormValue("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if user == nil {
		return fiber.ErrNotFound
	}

	role, member := t.repository.MemberRole(team.ID, user.ID)
	if !member {
		return fiber.ErrNotFound
	}

	if role == model.TeamRoleAdmin && t.repository.TeamAdmins(team.ID) == 1 {
		return fiber.ErrForbidden
	}

	if err := t.repository.RemoveMember(team.ID, user.ID); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/teams/" + team.Uuid)
}
