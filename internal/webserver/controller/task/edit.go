package task

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Edit renders the edit task form
func (t *Controller) Edit(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	task, err := t.repository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if task == nil {
		return fiber.ErrNotFound
	}

	if !t.canAccess(task, session) {
		return fiber.ErrForbidden
	}

	team, err := t.taskTeam(task)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("task/edit", fiber.Map{
		"Title":   "Edit task",
		"Task":    task,
		"Team":    team,
		"Session": session,
		"Errors":  map[string]string{},
	}, "layout")
}

func (t *Controller) taskTeam(task *model.Task) (*model.Team, error) {
	if task.TeamID == nil {
		return nil, nil
	}
	return t.teamsRepository.FindByID(*task.TeamID)
}
