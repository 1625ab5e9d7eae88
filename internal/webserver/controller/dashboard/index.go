package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Index shows the admin dashboard counters
func (d *Controller) Index(c *fiber.Ctx) error {
	return c.Render("dashboard/index", fiber.Map{
		"Title":            "Dashboard",
		"TotalUsers":       d.usersRepository.Total(""),
		"TotalTeams":       d.teamsRepository.Total(),
		"TotalTasks":       d.tasksRepository.Total(),
		"TotalInvitations": d.invitationsRepository.Total(),
		"Session":          c.Locals("Session").(model.Session),
	}, "layout")
}
