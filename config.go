package main

import "time"

type Config struct {
	// DatabasePath is the path of the SQLite database file
	DatabasePath string `env:"DBPATH" env-default:"corkboard.db"`
	// AttachmentsPath points to the directory where task attachments are stored
	AttachmentsPath string `env:"ATTACHMENTSPATH" env-default:"attachments"`
	// Port defines the port number in which the webserver listens for requests
	Port int `env:"PORT" env-default:"3000"`
	// FQDN stores the domain name of the server, used to compose invitation links
	FQDN string `env:"FQDN" env-default:"localhost"`
	// JwtSecret stores the string to use to sign JWTs
	JwtSecret []byte `env:"JWT_SECRET" env-required:"true"`
	// SessionTimeout specifies how long a session can be idle before expiring
	SessionTimeout time.Duration `env:"SESSION_TIMEOUT" env-default:"24h"`
	// InvitationTimeout specifies how long team invitations remain valid
	InvitationTimeout time.Duration `env:"INVITATION_TIMEOUT" env-default:"168h"`
	// MinPasswordLength is the minimum length passwords must have
	MinPasswordLength int `env:"MIN_PASSWORD_LENGTH" env-default:"5"`
	// UploadAttachmentMaxSize is the maximum allowed size of attachments in megabytes
	UploadAttachmentMaxSize int `env:"UPLOAD_ATTACHMENT_MAX_SIZE" env-default:"20"`

	SmtpServer   string `env:"SMTP_SERVER"`
	SmtpPort     int    `env:"SMTP_PORT" env-default:"587"`
	SmtpUser     string `env:"SMTP_USER"`
	SmtpPassword string `env:"SMTP_PASSWORD"`

	// SendGridAPIKey enables the SendGrid fallback email provider when set
	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	// SendGridSender is the verified sender address used by SendGrid
	SendGridSender string `env:"SENDGRID_SENDER"`

	// WhatsAppAPIKey enables WhatsApp task reminders when set
	WhatsAppAPIKey string `env:"WHATSAPP_API_KEY"`
	// WhatsAppAPIURL is the base URL of the WhatsApp messaging API
	WhatsAppAPIURL string `env:"WHATSAPP_API_URL" env-default:"https://public.doubletick.io"`
}
