package task

import (
	"github.com/microcosm-cc/bluemonday"
	"github.com/spf13/afero"
	"github.com/svera/corkboard/internal/webserver/model"
)

type tasksRepository interface {
	Create(task *model.Task) error
	FindByID(id uint) (*model.Task, error)
	FindByUuid(uuid string) (*model.Task, error)
	Board(teamID *uint, creatorID uint, filter string) (map[string][]model.Task, error)
	Update(task *model.Task) error
	Move(task *model.Task, status string, position int) error
	Delete(uuid string) error
}

type attachmentsRepository interface {
	Create(attachment *model.Attachment) error
	FindByUuid(uuid string) (*model.Attachment, error)
	Delete(uuid string) error
}

type teamsRepository interface {
	FindByUuid(uuid string) (*model.Team, error)
	FindByID(id uint) (*model.Team, error)
	MemberRole(teamID, userID uint) (string, bool)
}

type usersRepository interface {
	FindByUuid(uuid string) (*model.User, error)
}

type Sender interface {
	Send(from, to, subject, body string) error
	From() string
}

type Messenger interface {
	SendTemplate(phone string, placeholders []string) error
}

type Config struct {
	AttachmentsPath         string
	UploadAttachmentMaxSize int
}

type Controller struct {
	repository            tasksRepository
	attachmentsRepository attachmentsRepository
	teamsRepository       teamsRepository
	usersRepository       usersRepository
	sender                Sender
	messenger             Messenger
	appFs                 afero.Fs
	config                Config
	sanitizer             *bluemonday.Policy
}

func NewController(repository tasksRepository, attachmentsRepository attachmentsRepository, teamsRepository teamsRepository, usersRepository usersRepository, sender Sender, messenger Messenger, appFs afero.Fs, cfg Config) *Controller {
	return &Controller{
		repository:            repository,
		attachmentsRepository: attachmentsRepository,
		teamsRepository:       teamsRepository,
		usersRepository:       usersRepository,
		sender:                sender,
		messenger:             messenger,
		appFs:                 appFs,
		config:                cfg,
		sanitizer:             bluemonday.UGCPolicy(),
	}
}

// canAccess tells if the session user may see or modify the task: personal
// tasks belong to their creator only, team tasks to any team member.
func (t *Controller) canAccess(task *model.Task, session model.Session) bool {
	if task.TeamID == nil {
		return task.CreatedByID == session.ID
	}
	_, member := t.teamsRepository.MemberRole(*task.TeamID, session.ID)
	return member
}
