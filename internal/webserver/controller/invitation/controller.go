package invitation

import (
	"time"

	"github.com/svera/corkboard/internal/webserver/model"
)

type invitationsRepository interface {
	Create(invitation *model.Invitation) error
	FindByUuid(uuid string) (*model.Invitation, error)
	PendingByEmail(email string) ([]model.Invitation, error)
	PendingByTeamAndEmail(teamID uint, email string) (*model.Invitation, error)
	Accept(invitation *model.Invitation, user *model.User) error
	Decline(uuid string) error
}

type teamsRepository interface {
	FindByUuid(uuid string) (*model.Team, error)
	FindByID(id uint) (*model.Team, error)
	MemberRole(teamID, userID uint) (string, bool)
}

type usersRepository interface {
	FindByUuid(uuid string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
}

type Sender interface {
	Send(from, to, subject, body string) error
	From() string
}

type Config struct {
	InvitationTimeout time.Duration
}

type Controller struct {
	invitationsRepository invitationsRepository
	teamsRepository       teamsRepository
	usersRepository       usersRepository
	sender                Sender
	config                Config
}

func NewController(invitationsRepository invitationsRepository, teamsRepository teamsRepository, usersRepository usersRepository, sender Sender, cfg Config) *Controller {
	return &Controller{
		invitationsRepository: invitationsRepository,
		teamsRepository:       teamsRepository,
		usersRepository:       usersRepository,
		sender:                sender,
		config:                cfg,
	}
}
