package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/spf13/afero"
	"github.com/svera/corkboard/internal/webserver"
	"github.com/svera/corkboard/internal/webserver/infrastructure"
)

var version string = "unknown"

func main() {
	var cfg Config
	var appFs = afero.NewOsFs()

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal(fmt.Sprintf("Error parsing configuration from environment variables: %s", err))
	}

	if err := os.MkdirAll(cfg.AttachmentsPath, os.ModePerm); err != nil {
		log.Fatal(fmt.Errorf("Couldn't create %s, exiting", cfg.AttachmentsPath))
	}

	db := infrastructure.Connect(cfg.DatabasePath)

	webserverConfig := webserver.Config{
		Version:                 version,
		FQDN:                    cfg.FQDN,
		Port:                    cfg.Port,
		JwtSecret:               cfg.JwtSecret,
		SessionTimeout:          cfg.SessionTimeout,
		InvitationTimeout:       cfg.InvitationTimeout,
		MinPasswordLength:       cfg.MinPasswordLength,
		AttachmentsPath:         cfg.AttachmentsPath,
		UploadAttachmentMaxSize: cfg.UploadAttachmentMaxSize,
	}

	controllers := webserver.SetupControllers(webserverConfig, db, sender(cfg), messenger(cfg), appFs)
	app := webserver.New(webserverConfig, controllers)
	fmt.Printf("Corkboard version %s started listening on port %d\n\n", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}

// sender assembles the email provider chain from the configured providers,
// tried in order: SMTP first, then the SendGrid HTTP API.
func sender(cfg Config) webserver.Sender {
	providers := []webserver.Sender{}

	if cfg.SmtpServer != "" && cfg.SmtpUser != "" && cfg.SmtpPassword != "" {
		providers = append(providers, &infrastructure.SMTP{
			Server:   cfg.SmtpServer,
			Port:     cfg.SmtpPort,
			User:     cfg.SmtpUser,
			Password: cfg.SmtpPassword,
		})
	}

	if cfg.SendGridAPIKey != "" && cfg.SendGridSender != "" {
		providers = append(providers, &infrastructure.SendGrid{
			APIKey: cfg.SendGridAPIKey,
			Sender: cfg.SendGridSender,
		})
	}

	switch len(providers) {
	case 0:
		return &infrastructure.NoEmail{}
	case 1:
		return providers[0]
	default:
		return infrastructure.NewChain(providers[0], providers[1])
	}
}

func messenger(cfg Config) webserver.Messenger {
	if cfg.WhatsAppAPIKey == "" {
		return &infrastructure.NoWhatsApp{}
	}
	return &infrastructure.WhatsApp{
		APIKey:  cfg.WhatsAppAPIKey,
		BaseURL: cfg.WhatsAppAPIURL,
	}
}
