package webserver

import (
	"io/fs"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/webserver/infrastructure"
)

type Config struct {
	Version                 string
	FQDN                    string
	Port                    int
	JwtSecret               []byte
	SessionTimeout          time.Duration
	InvitationTimeout       time.Duration
	MinPasswordLength       int
	AttachmentsPath         string
	UploadAttachmentMaxSize int
}

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, controllers Controllers) *fiber.App {
	views, err := fs.Sub(viewsFS, "views")
	if err != nil {
		log.Fatal(err)
	}

	engine, err := infrastructure.TemplateEngine(views)
	if err != nil {
		log.Fatal(err)
	}

	app := fiber.New(fiber.Config{
		Views:                 engine,
		AppName:               cfg.Version,
		DisableStartupMessage: true,
		ErrorHandler:          controllers.ErrorHandler,
		BodyLimit:             cfg.UploadAttachmentMaxSize * 1024 * 1024,
	})

	app.Use(SetFQDN(cfg))

	routes(app, controllers, cfg.JwtSecret)

	return app
}
