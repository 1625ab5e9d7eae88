package team

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// New renders the new team form
func (t *Controller) New(c *fiber.Ctx) error {
	return c.Render("team/new", fiber.Map{
		"Title":   "New team",
		"Team":    model.Team{},
		"Session": c.Locals("Session").(model.Session),
		"Errors":  map[string]string{},
	}, "layout")
}
