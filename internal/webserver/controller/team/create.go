package team

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Create gathers information coming from the new team form and creates a new
// team, making its creator a team admin
func (t *Controller) Create(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	team := model.Team{
		Uuid:        uuid.NewString(),
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		CreatedByID: session.ID,
	}

	if errs := team.Validate(); len(errs) > 0 {
		return c.Render("team/new", fiber.Map{
			"Title":   "New team",
			"Team":    team,
			"Session": session,
			"Errors":  errs,
		}, "layout")
	}

	if err := t.repository.Create(&team, session.ID); err != nil {
		return fiber.ErrInternalServerError
	}

	c.Cookie(&fiber.Cookie{
		Name:    "success",
		Value:   "true",
		Expires: time.Now().Add(24 * time.Hour),
	})

	return c.Redirect("/teams")
}
