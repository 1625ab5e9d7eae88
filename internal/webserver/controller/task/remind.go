package task

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Remind nudges the task's assignee about it. Assignees with a phone number get
// a WhatsApp template message; the rest get an email through the sender chain.
// Best effort, nothing is persisted or retried.
func (t *Controller) Remind(c *fiber.Ctx) error {
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

	if task.Assignee == nil {
		return fiber.NewError(fiber.StatusBadRequest, "This task has no assignee")
	}

	team, err := t.taskTeam(task)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	dueDate := "no due date"
	if task.DueDate != nil {
		dueDate = task.DueDate.Format("2 Jan 2006")
	}

	if task.Assignee.Phone != "" {
		err = t.messenger.SendTemplate(task.Assignee.Phone, []string{
			task.Assignee.Name,
			task.Title,
			dueDate,
		})
	} else {
		c.Render("task/reminder-email", fiber.Map{
			"AssigneeName": task.Assignee.Name,
			"SenderName":   session.Name,
			"TaskTitle":    task.Title,
			"DueDate":      dueDate,
			"Priority":     task.Priority,
		})
		err = t.sender.Send(
			t.sender.From(),
			task.Assignee.Email,
			fmt.Sprintf("Reminder: %s", task.Title),
			string(c.Response().Body()),
		)
	}

	if err != nil {
		log.Printf("error sending task reminder: %v\n", err)
		return fiber.NewError(fiber.StatusInternalServerError, "The reminder could not be sent")
	}

	c.Cookie(&fiber.Cookie{
		Name:    "success",
		Value:   "true",
		Expires: time.Now().Add(24 * time.Hour),
	})

	return c.Redirect(boardURL(team))
}
