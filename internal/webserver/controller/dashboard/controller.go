package dashboard

type usersRepository interface {
	Total(filter string) int64
}

type teamsRepository interface {
	Total() int64
}

type tasksRepository interface {
	Total() int64
}

type invitationsRepository interface {
	Total() int64
}

type Controller struct {
	usersRepository       usersRepository
	teamsRepository       teamsRepository
	tasksRepository       tasksRepository
	invitationsRepository invitationsRepository
}

func NewController(usersRepository usersRepository, teamsRepository teamsRepository, tasksRepository tasksRepository, invitationsRepository invitationsRepository) *Controller {
	return &Controller{
		usersRepository:       usersRepository,
		teamsRepository:       teamsRepository,
		tasksRepository:       tasksRepository,
		invitationsRepository: invitationsRepository,
	}
}
