package task

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
)

// Move puts the task in the given status column at the given position, shifting
// down the tasks already there. This is the endpoint behind dragging a card
// around the board.
func (t *Controller) Move(c *fiber.Ctx) error {
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

	status := c.FormValue("status")
	if !model.ValidTaskStatus(status) {
		return fiber.ErrBadRequest
	}

	position, err := strconv.Atoi(c.FormValue("position"))
	if err != nil || position < 1 {
		return fiber.ErrBadRequest
	}

	if err := t.repository.Move(task, status, position); err != nil {
		return fiber.ErrInternalServerError
	}

	return c.SendStatus(fiber.StatusNoContent)
}
