package invitation

import (
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/svera/corkboard/internal/webserver/model"
)

// New renders the invitation form of a team
func (i *Controller) New(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	team, err := i.teamsRepository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if team == nil {
		return fiber.ErrNotFound
	}

	if role, ok := i.teamsRepository.MemberRole(team.ID, session.ID); !ok || role != model.TeamRoleAdmin {
		return fiber.ErrForbidden
	}

	return c.Render("invitation/new", fiber.Map{
		"Title":   "Invite to " + team.Name,
		"Team":    team,
		"Session": session,
		"Errors":  map[string]string{},
	}, "layout")
}

// Send creates an invitation to the team and emails its deep link to the
// invited address. The email goes out with the inviter as the From address, so
// the invitation appears to come from a teammate rather than from the system.
func (i *Controller) Send(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	team, err := i.teamsRepository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if team == nil {
		return fiber.ErrNotFound
	}

	if role, ok := i.teamsRepository.MemberRole(team.ID, session.ID); !ok || role != model.TeamRoleAdmin {
		return fiber.ErrForbidden
	}

	email := strings.TrimSpace(c.FormValue("email"))
	role := c.FormValue("role")
	if role != model.TeamRoleAdmin {
		role = model.TeamRoleMember
	}

	errs, err := i.validateInviteEmail(team, email)
	if err != nil {
		return err
	}

	if len(errs) > 0 {
		return c.Render("invitation/new", fiber.Map{
			"Title":   "Invite to " + team.Name,
			"Team":    team,
			"Session": session,
			"Email":   email,
			"Errors":  errs,
		}, "layout")
	}

	invitation := &model.Invitation{
		Uuid:        uuid.NewString(),
		TeamID:      team.ID,
		Email:       email,
		Role:        role,
		Status:      model.InvitationPending,
		InvitedByID: session.ID,
		ValidUntil:  time.Now().UTC().Add(i.config.InvitationTimeout),
	}

	if err := i.invitationsRepository.Create(invitation); err != nil {
		return fiber.ErrInternalServerError
	}

	invitationLink := fmt.Sprintf(
		"%s/invitations/%s",
		c.Locals("fqdn").(string),
		invitation.Uuid,
	)

	c.Render("invitation/email", fiber.Map{
		"InviterName":    session.Name,
		"TeamName":       team.Name,
		"InvitationLink": invitationLink,
		"ValidUntil":     invitation.ValidUntil.Format("2 Jan 2006"),
	})

	// The invitation stays around even if the email cannot go out, the invitee
	// can still reach it through its deep link.
	if err := i.sender.Send(
		session.Email,
		email,
		fmt.Sprintf("%s invited you to join %s", session.Name, team.Name),
		string(c.Response().Body()),
	); err != nil {
		log.Printf("error sending invitation email: %v\n", err)
		return fiber.ErrInternalServerError
	}

	c.Cookie(&fiber.Cookie{
		Name:    "success",
		Value:   "true",
		Expires: time.Now().Add(24 * time.Hour),
	})

	return c.Redirect("/teams/" + team.Uuid)
}

func (i *Controller) validateInviteEmail(team *model.Team, email string) (map[string]string, error) {
	errs := map[string]string{}

	if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "Incorrect email address"
		return errs, nil
	}

	if len(email) > 100 {
		errs["email"] = "Email cannot be longer than 100 characters"
		return errs, nil
	}

	if user, err := i.usersRepository.FindByEmail(email); err != nil {
		return nil, fiber.ErrInternalServerError
	} else if user != nil {
		if _, member := i.teamsRepository.MemberRole(team.ID, user.ID); member {
			errs["email"] = "This user is already a member of the team"
			return errs, nil
		}
	}

	if pending, err := i.invitationsRepository.PendingByTeamAndEmail(team.ID, email); err != nil {
		return nil, fiber.ErrInternalServerError
	} else if pending != nil {
		errs["email"] = "An invitation for this email is already pending"
	}

	return errs, nil
}
