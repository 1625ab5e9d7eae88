package infrastructure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// WhatsApp sends task reminders as WhatsApp template messages through a
// DoubleTick-style HTTP API. Only pre-approved templates can be sent, so the
// reminder text travels as template placeholders.
type WhatsApp struct {
	APIKey  string
	BaseURL string
	client  *http.Client
}

type whatsAppMessage struct {
	To      string          `json:"to"`
	Content whatsAppContent `json:"content"`
}

type whatsAppContent struct {
	TemplateName string           `json:"templateName"`
	Language     string           `json:"language"`
	TemplateData whatsAppTemplate `json:"templateData"`
}

type whatsAppTemplate struct {
	Header struct {
		Type string `json:"type"`
	} `json:"header"`
	Body struct {
		Placeholders []string `json:"placeholders"`
	} `json:"body"`
}

// SendTemplate sends the "Task Reminder" template to the given phone number,
// which must be in international format.
func (w *WhatsApp) SendTemplate(phone string, placeholders []string) error {
	content := whatsAppContent{
		TemplateName: "Task Reminder",
		Language:     "en_GB",
	}
	content.TemplateData.Header.Type = "TEXT"
	content.TemplateData.Body.Placeholders = placeholders

	payload := struct {
		Messages []whatsAppMessage `json:"messages"`
	}{
		Messages: []whatsAppMessage{{To: phone, Content: content}},
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, w.BaseURL+"/whatsapp/message/template", bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", w.APIKey)

	response, err := w.httpClient().Do(req)
	if err != nil {
		log.Println(err)
		return err
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		err = fmt.Errorf("whatsapp API returned status %d", response.StatusCode)
		log.Println(err)
		return err
	}

	return nil
}

func (w *WhatsApp) httpClient() *http.Client {
	if w.client == nil {
		w.client = &http.Client{Timeout: 10 * time.Second}
	}
	return w.client
}
