package task

import (
	"log"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Delete removes a task along with its attachments and their stored files
func (t *Controller) Delete(c *fiber.Ctx) error {
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

	for _, attachment := range task.Attachments {
		if err := t.appFs.Remove(filepath.Join(t.config.AttachmentsPath, attachment.StoredName)); err != nil {
			log.Printf("error removing attachment file: %v\n", err)
		}
	}

	if err := t.repository.Delete(task.Uuid); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Redirect(boardURL(team))
}
