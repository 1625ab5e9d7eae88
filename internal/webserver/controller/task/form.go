package task

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// applyForm fills the task with the new/edit form values, sanitizing the
// description markup, and returns the validation errors found.
func (t *Controller) applyForm(c *fiber.Ctx, task *model.Task, team *model.Team) map[string]string {
	task.Title = strings.TrimSpace(c.FormValue("title"))
	task.Description = t.sanitizer.Sanitize(c.FormValue("description"))

	if status := c.FormValue("status"); status != "" {
		task.Status = status
	}
	if priority := c.FormValue("priority"); priority != "" {
		task.Priority = priority
	}

	errs := task.Validate()

	if value := c.FormValue("due-date"); value != "" {
		dueDate, err := time.Parse("2006-01-02", value)
		if err != nil {
			errs["duedate"] = "Incorrect due date"
		} else {
			task.DueDate = &dueDate
		}
	} else {
		task.DueDate = nil
	}

	if assigneeUuid := c.FormValue("assignee"); assigneeUuid != "" {
		if team == nil {
			errs["assignee"] = "Personal tasks cannot have an assignee"
			return errs
		}
		assignee, err := t.usersRepository.FindByUuid(assigneeUuid)
		if err != nil || assignee == nil {
			errs["assignee"] = "Unknown assignee"
			return errs
		}
		if _, member := t.teamsRepository.MemberRole(team.ID, assignee.ID); !member {
			errs["assignee"] = "The assignee must be a member of the team"
			return errs
		}
		task.AssignedTo = &assignee.ID
	} else {
		task.AssignedTo = nil
	}

	return errs
}

func boardURL(team *model.Team) string {
	if team == nil {
		return "/board"
	}
	return "/teams/" + team.Uuid + "/board"
}
