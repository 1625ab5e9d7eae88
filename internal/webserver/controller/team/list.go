package team

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// List shows the teams the session user belongs to
func (t *Controller) List(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	teams, err := t.repository.ListByUser(session.ID)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	msg := ""
	if c.Cookies("success") == "true" {
		c.Cookie(&fiber.Cookie{
			Name:    "success",
			Expires: time.Now().Add(-(time.Hour * 2)),
		})
		msg = "Team created."
	}

	return c.Render("team/index", fiber.Map{
		"Title":   "Teams",
		"Teams":   teams,
		"Session": session,
		"Message": msg,
	}, "layout")
}
