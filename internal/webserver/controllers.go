package webserver

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/svera/corkboard/internal/webserver/controller/auth"
	"github.com/svera/corkboard/internal/webserver/controller/dashboard"
	"github.com/svera/corkboard/internal/webserver/controller/home"
	"github.com/svera/corkboard/internal/webserver/controller/invitation"
	"github.com/svera/corkboard/internal/webserver/controller/task"
	"github.com/svera/corkboard/internal/webserver/controller/team"
	"github.com/svera/corkboard/internal/webserver/controller/user"
	"github.com/svera/corkboard/internal/webserver/jwtclaimsreader"
	"github.com/svera/corkboard/internal/webserver/model"
	"gorm.io/gorm"
)

// Sender defines the behaviour expected to deliver emails
type Sender interface {
	Send(from, to, subject, body string) error
	From() string
}

// Messenger defines the behaviour expected to deliver WhatsApp template messages
type Messenger interface {
	SendTemplate(phone string, placeholders []string) error
}

type Controllers struct {
	Auth         *auth.Controller
	Users        *user.Controller
	Teams        *team.Controller
	Tasks        *task.Controller
	Invitations  *invitation.Controller
	Home         *home.Controller
	Dashboard    *dashboard.Controller
	ErrorHandler func(c *fiber.Ctx, err error) error
}

func SetupControllers(cfg Config, db *gorm.DB, sender Sender, messenger Messenger, appFs afero.Fs) Controllers {
	usersRepository := &model.UserRepository{DB: db}
	teamsRepository := &model.TeamRepository{DB: db}
	invitationsRepository := &model.InvitationRepository{DB: db}
	tasksRepository := &model.TaskRepository{DB: db}
	attachmentsRepository := &model.AttachmentRepository{DB: db}

	authCfg := auth.Config{
		Secret:            cfg.JwtSecret,
		MinPasswordLength: cfg.MinPasswordLength,
		SessionTimeout:    cfg.SessionTimeout,
	}

	usersCfg := user.Config{
		MinPasswordLength: cfg.MinPasswordLength,
		Secret:            cfg.JwtSecret,
		SessionTimeout:    cfg.SessionTimeout,
	}

	invitationsCfg := invitation.Config{
		InvitationTimeout: cfg.InvitationTimeout,
	}

	tasksCfg := task.Config{
		AttachmentsPath:         cfg.AttachmentsPath,
		UploadAttachmentMaxSize: cfg.UploadAttachmentMaxSize,
	}

	return Controllers{
		Auth:        auth.NewController(usersRepository, authCfg),
		Users:       user.NewController(usersRepository, usersCfg),
		Teams:       team.NewController(teamsRepository, invitationsRepository, usersRepository),
		Tasks:       task.NewController(tasksRepository, attachmentsRepository, teamsRepository, usersRepository, sender, messenger, appFs, tasksCfg),
		Invitations: invitation.NewController(invitationsRepository, teamsRepository, usersRepository, sender, invitationsCfg),
		Home:        home.NewController(teamsRepository, tasksRepository, invitationsRepository),
		Dashboard:   dashboard.NewController(usersRepository, teamsRepository, tasksRepository, invitationsRepository),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Status code defaults to 500
			code := fiber.StatusInternalServerError

			// Retrieve the custom status code if it's a *fiber.Error
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			// Send custom error page
			err = c.Status(code).Render(
				fmt.Sprintf("errors/%d", code),
				fiber.Map{
					"Title":   "Corkboard",
					"Message": err.Error(),
					"Session": jwtclaimsreader.SessionData(c),
					"Version": c.App().Config().AppName,
				},
				"layout")

			if err != nil {
				log.Println(err)
				// In case the Render fails
				return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
			}

			return nil
		},
	}
}
