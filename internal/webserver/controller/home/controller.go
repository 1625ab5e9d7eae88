package home

import (
	"github.com/svera/corkboard/internal/webserver/model"
)

type teamsRepository interface {
	ListByUser(userID uint) ([]model.Team, error)
}

type tasksRepository interface {
	AssignedTo(userID uint) ([]model.Task, error)
}

type invitationsRepository interface {
	PendingByEmail(email string) ([]model.Invitation, error)
}

type Controller struct {
	teamsRepository       teamsRepository
	tasksRepository       tasksRepository
	invitationsRepository invitationsRepository
}

func NewController(teamsRepository teamsRepository, tasksRepository tasksRepository, invitationsRepository invitationsRepository) *Controller {
	return &Controller{
		teamsRepository:       teamsRepository,
		tasksRepository:       tasksRepository,
		invitationsRepository: invitationsRepository,
	}
}
