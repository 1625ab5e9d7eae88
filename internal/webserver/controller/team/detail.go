package team

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Detail shows a team with its members and pending invitations. Member display
// names always come from the users table through the membership rows.
func (t *Controller) Detail(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	team, err := t.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if team == nil {
		return fiber.ErrNotFound
	}

	role, member := t.repository.MemberRole(team.ID, session.ID)
	if !member {
		return fiber.ErrForbidden
	}

	var invitations []model.Invitation
	if role == model.TeamRoleAdmin {
		if invitations, err = t.invitationsRepository.PendingByTeam(team.ID); err != nil {
			return fiber.ErrInternalServerError
		}
	}

	msg := ""
	if c.Cookies("success") == "true" {
		c.Cookie(&fiber.Cookie{
			Name:    "success",
			Expires: time.Now().Add(-(time.Hour * 2)),
		})
		msg = "Done."
	}

	return c.Render("team/detail", fiber.Map{
		"Title":       team.Name,
		"Team":        team,
		"Members":     team.Members,
		"Invitations": invitations,
		"IsTeamAdmin": role == model.TeamRoleAdmin,
		"Session":     session,
		"Message":     msg,
	}, "layout")
}
