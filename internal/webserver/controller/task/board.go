package task

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/model"
	"github.com/svera/corkboard/internal/webserver/view"
)

// Board shows the Kanban board of a team, tasks grouped by status and ordered
// by position, optionally filtered by title or description
func (t *Controller) Board(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	team, err := t.teamsRepository.FindByUuid(c.Params("uuid"))
	if err != nil {
		return fiber.ErrInternalServerError
	}
	if team == nil {
		return fiber.ErrNotFound
	}

	role, member := t.teamsRepository.MemberRole(team.ID, session.ID)
	if !member {
		return fiber.ErrForbidden
	}

	board, err := t.repository.Board(&team.ID, session.ID, c.Query("filter"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("task/board", fiber.Map{
		"Title":       team.Name + " board",
		"Team":        team,
		"Todo":        board[model.TaskStatusTodo],
		"InProgress":  board[model.TaskStatusInProgress],
		"Done":        board[model.TaskStatusDone],
		"Filter":      c.Query("filter"),
		"IsTeamAdmin": role == model.TeamRoleAdmin,
		"Session":     session,
		"URL":         view.URL(c),
	}, "layout")
}

// PersonalBoard shows the board of the session user's teamless tasks
func (t *Controller) PersonalBoard(c *fiber.Ctx) error {
	session := c.Locals("Session").(model.Session)

	board, err := t.repository.Board(nil, session.ID, c.Query("filter"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.Render("task/board", fiber.Map{
		"Title":      "My board",
		"Todo":       board[model.TaskStatusTodo],
		"InProgress": board[model.TaskStatusInProgress],
		"Done":       board[model.TaskStatusDone],
		"Filter":     c.Query("filter"),
		"Session":    session,
		"URL":        view.URL(c),
	}, "layout")
}
