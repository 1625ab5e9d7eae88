package model

import "time"

const (
	TaskStatusTodo       = "todo"
	TaskStatusInProgress = "in-progress"
	TaskStatusDone       = "done"
)

const (
	TaskPriorityLow    = "low"
	TaskPriorityMedium = "medium"
	TaskPriorityHigh   = "high"
)

type Task struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Uuid      string `gorm:"uniqueIndex"`
	// TeamID is nil for personal tasks, which only show up on their creator's board.
	TeamID      *uint
	Title       string `gorm:"not null"`
	Description string
	Status      string `gorm:"default:todo"`
	Position    int
	Priority    string `gorm:"default:medium"`
	DueDate     *time.Time
	AssignedTo  *uint
	CreatedByID uint
	Assignee    *User        `gorm:"foreignKey:AssignedTo"`
	Attachments []Attachment `gorm:"constraint:OnDelete:CASCADE"`
}

type Attachment struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	Uuid         string `gorm:"uniqueIndex"`
	TaskID       uint   `gorm:"not null"`
	Name         string
	StoredName   string
	Size         int64
	UploadedByID uint
}

func ValidTaskStatus(status string) bool {
	return status == TaskStatusTodo || status == TaskStatusInProgress || status == TaskStatusDone
}

func ValidTaskPriority(priority string) bool {
	return priority == TaskPriorityLow || priority == TaskPriorityMedium || priority == TaskPriorityHigh
}

func (t Task) Validate() map[string]string {
	errs := map[string]string{}

	if t.Title == "" {
		errs["title"] = "Title cannot be empty"
	}

	if len(t.Title) > 100 {
		errs["title"] = "Title cannot be longer than 100 characters"
	}

	if !ValidTaskStatus(t.Status) {
		errs["status"] = "Incorrect status"
	}

	if !ValidTaskPriority(t.Priority) {
		errs["priority"] = "Incorrect priority"
	}

	return errs
}
