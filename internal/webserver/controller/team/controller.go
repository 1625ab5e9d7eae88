package team

import (
	"github.com/svera/corkboard/internal/webserver/model"
)

type teamsRepository interface {
	Create(team *model.Team, creatorID uint) error
	FindByUuid(uuid string) (*model.Team, error)
	ListByUser(userID uint) ([]model.Team, error)
	Update(team *model.Team) error
	Delete(uuid string) error
	MemberRole(teamID, userID uint) (string, bool)
	RemoveMember(teamID, userID uint) error
	TeamAdmins(teamID uint) int64
}

type invitationsRepository interface {
	PendingByTeam(teamID uint) ([]model.Invitation, error)
}

type usersRepository interface {
	FindByUuid(uuid string) (*model.User, error)
}

type Controller struct {
	repository            teamsRepository
	invitationsRepository invitationsRepository
	usersRepository       usersRepository
}

func NewController(repository teamsRepository, invitationsRepository invitationsRepository, usersRepository usersRepository) *Controller {
	return &Controller{
		repository:            repository,
		invitationsRepository: invitationsRepository,
		usersRepository:       usersRepository,
	}
}
