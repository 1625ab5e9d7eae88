package model

import (
	"errors"
	"log"

	"gorm.io/gorm"
)

type TaskRepository struct {
	DB *gorm.DB
}

func (t *TaskRepository) Create(task *Task) error {
	if task.Position == 0 {
		task.Position = t.nextPosition(task.TeamID, task.CreatedByID, task.Status)
	}
	if result := t.DB.Create(task); result.Error != nil {
		log.Printf("error creating task: %s\n", result.Error)
		return result.Error
	}
	return nil
}

func (t *TaskRepository) FindByID(id uint) (*Task, error) {
	var task Task

	result := t.DB.Preload("Assignee").Preload("Attachments").First(&task, id)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &task, result.Error
}

func (t *TaskRepository) FindByUuid(uuid string) (*Task, error) {
	var task Task

	result := t.DB.Preload("Assignee").Preload("Attachments").Where("uuid = ?", uuid).First(&task)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &task, result.Error
}

// Board returns the tasks of a team board (or, when teamID is nil, the personal
// board of creatorID) grouped by status, each column ordered by position. An
// optional filter narrows results down to tasks matching it in title or
// description.
func (t *TaskRepository) Board(teamID *uint, creatorID uint, filter string) (map[string][]Task, error) {
	var tasks []Task

	query := t.DB.Preload("Assignee").Preload("Attachments")
	if teamID != nil {
		query = query.Where("team_id = ?", *teamID)
	} else {
		query = query.Where("team_id IS NULL AND created_by_id = ?", creatorID)
	}
	if filter != "" {
		query = query.Where("title LIKE ? OR description LIKE ?", "%"+filter+"%", "%"+filter+"%")
	}

	result := query.Order("position ASC").Find(&tasks)
	if result.Error != nil {
		log.Printf("error listing tasks: %s\n", result.Error)
		return nil, result.Error
	}

	board := map[string][]Task{
		TaskStatusTodo:       {},
		TaskStatusInProgress: {},
		TaskStatusDone:       {},
	}
	for _, task := range tasks {
		board[task.Status] = append(board[task.Status], task)
	}
	return board, nil
}

// AssignedTo returns the unfinished tasks assigned to the given user, due first.
func (t *TaskRepository) AssignedTo(userID uint) ([]Task, error) {
	var tasks []Task

	result := t.DB.
		Where("assigned_to = ? AND status <> ?", userID, TaskStatusDone).
		Order("due_date IS NULL, due_date ASC").
		Find(&tasks)
	if result.Error != nil {
		log.Printf("error listing assigned tasks: %s\n", result.Error)
		return nil, result.Error
	}
	return tasks, nil
}

func (t *TaskRepository) Update(task *Task) error {
	if result := t.DB.Save(task); result.Error != nil {
		log.Printf("error updating task: %s\n", result.Error)
		return result.Error
	}
	return nil
}

// Move places the task in the given status column at the given position,
// shifting down the tasks already there. This is the drag and drop endpoint's
// backing operation.
func (t *TaskRepository) Move(task *Task, status string, position int) error {
	return t.DB.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&Task{}).Where("status = ? AND position >= ? AND id <> ?", status, position, task.ID)
		if task.TeamID != nil {
			query = query.Where("team_id = ?", *task.TeamID)
		} else {
			query = query.Where("team_id IS NULL AND created_by_id = ?", task.CreatedByID)
		}
		if err := query.Update("position", gorm.Expr("position + 1")).Error; err != nil {
			return err
		}

		task.Status = status
		task.Position = position
		return tx.Save(task).Error
	})
}

func (t *TaskRepository) Delete(uuid string) error {
	var task Task

	result := t.DB.Where("uuid = ?", uuid).Delete(&task)
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		log.Printf("error deleting task: %s\n", result.Error)
	}
	return nil
}

func (t *TaskRepository) Total() int64 {
	var totalRows int64
	t.DB.Model(&Task{}).Count(&totalRows)
	return totalRows
}

func (t *TaskRepository) nextPosition(teamID *uint, creatorID uint, status string) int {
	var max int

	query := t.DB.Model(&Task{}).Where("status = ?", status)
	if teamID != nil {
		query = query.Where("team_id = ?", *teamID)
	} else {
		query = query.Where("team_id IS NULL AND created_by_id = ?", creatorID)
	}
	query.Select("COALESCE(MAX(position), 0)").Scan(&max)
	return max + 1
}
