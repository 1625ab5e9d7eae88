package infrastructure

import "errors"

// NoWhatsApp is used when no WhatsApp API key has been configured. Reminders
// fall back to email.
type NoWhatsApp struct {
}

func (w *NoWhatsApp) SendTemplate(phone string, placeholders []string) error {
	return errors.New("whatsapp messaging is not configured")
}
