package task

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Create gathers information coming from the new task form and creates a new
// task at the end of its board column
func (t *Controller) Create(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	var team *model.Team
	if teamUuid := c.FormValue("team"); teamUuid != "" {
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

	task := model.Task{
		Uuid:        uuid.NewString(),
		CreatedByID: session.ID,
		Status:      model.TaskStatusTodo,
		Priority:    model.TaskPriorityMedium,
	}
	if team != nil {
		task.TeamID = &team.ID
	}

	if errs := t.applyForm(c, &task, team); len(errs) > 0 {
		return c.Render("task/new", fiber.Map{
			"Title":   "New task",
			"Task":    task,
			"Team":    team,
			"Session": session,
			"Errors":  errs,
		}, "layout")
	}

	if err := t.repository.Create(&task); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(boardURL(team))
}
