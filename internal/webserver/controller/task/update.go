package task

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Update gathers information from the edit task form and updates the task
func (t *Controller) Update(c *fiber.Ctx) error {
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

	if errs := t.applyForm(c, task, team); len(errs) > 0 {
		return c.Render("task/edit", fiber.Map{
			"Title":   "Edit task",
			"Task":    task,
			"Team":    team,
			"Session": session,
			"Errors":  errs,
		}, "layout")
	}

	if err := t.repository.Update(task); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(boardURL(team))
}
