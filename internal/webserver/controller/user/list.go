package user

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
	"github.com/svera/corkboard/internal/webserver/view"
)

// List lists all users registered in the database
func (u *Controller) List(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}

	users, _ := u.repository.List(page, model.ResultsPerPage, c.Query("filter"))

	msg := ""
	if c.Cookies("success") == "true" {
		c.Cookie(&fiber.Cookie{
			Name:    "success",
			Expires: time.Now().Add(-(time.Hour * 2)),
		})
		msg = "User created."
	}

	return c.Render("user/index", fiber.Map{
		"Title":     "Users",
		"Users":     users.Hits(),
		"Paginator": view.Pagination(model.MaxPagesNavigator, users, c.Queries()),
		"Admins":    u.repository.Admins(),
		"Filter":    c.Query("filter"),
		"URL":       view.URL(c),
		"Session":   c.Locals("Session").(model.Session),
		"Message":   msg,
	}, "layout")
}
