package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// New renders the new user form
func (u *Controller) New(c *fiber.Ctx) error {
	return c.Render("user/new", fiber.Map{
		"Title":             "Add user",
		"User":              model.User{},
		"MinPasswordLength": u.config.MinPasswordLength,
		"UsernamePattern":   model.UsernamePattern,
		"Session":           c.Locals("Session").(model.Session),
		"Errors":            map[string]string{},
	}, "layout")
}
