package user

import (
	"time"

	"github.com/svera/corkboard/internal/result"
	"github.com/svera/corkboard/internal/webserver/model"
)

type usersRepository interface {
	List(page int, resultsPerPage int, filter string) (result.Paginated[[]model.User], error)
	Total(filter string) int64
	FindByUuid(uuid string) (*model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	Create(user *model.User) error
	Update(user *model.User) error
	Admins() int64
	Delete(uuid string) error
}

type Config struct {
	MinPasswordLength int
	Secret            []byte
	SessionTimeout    time.Duration
}

type Controller struct {
	repository usersRepository
	config     Config
}

// NewController returns a new instance of the users controller
func NewController(repository usersRepository, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		config:     cfg,
	}
}
