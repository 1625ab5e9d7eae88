package task

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// New renders the new task form. When a team is given, the task belongs to its
// board and can be assigned to any of its members.
func (t *Controller) New(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	var team *model.Team
	if teamUuid := c.Query("team"); teamUuid != "" {
		var err error
		if team, err = t.teamsRepository.FindByUuid(teamUuid); err != nil {
			return fiber.ErrInternalServerError
		}
		if team == nil {
			return fiber.ErrNotFound
		}
		if _, member := t.teamsRepository.MemberRole(team.ID, session.ID); !member {
			return fiber.ErrForbidden
		}
	}

	return c.Render("task/new", fiber.Map{
		"Title":   "New task",
		"Task":    model.Task{Status: model.TaskStatusTodo, Priority: model.TaskPriorityMedium},
		"Team":    team,
		"Session": session,
		"Errors":  map[string]string{},
	}, "layout")
}
