package invitation

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Accept makes the session user a member of the invitation's team. The whole
// acceptance runs in a single transaction in the repository, so either the
// invitation reaches its accepted state and the membership exists, or nothing
// changed at all.
func (i *Controller) Accept(c *fiber.Ctx) error {
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

	user, err := i.usersRepository.FindByUuid(session.Uuid)
	if err != nil || user == nil {
		return fiber.ErrInternalServerError
	}

	if err := i.invitationsRepository.Accept(invitation, user); err != nil {
		if errors.Is(err, model.ErrNoLongerPending) {
			return fiber.NewError(fiber.StatusConflict, "Invitation is no longer pending")
		}
		log.Printf("error accepting invitation: %v\n", err)
		return fiber.ErrInternalServerError
	}

	c.Cookie(&fiber.Cookie{
		Name:    "success",
		Value:   "true",
		Expires: time.Now().Add(24 * time.Hour),
	})

	return c.Redirect("/teams/" + invitation.Team.Uuid)
}
