package infrastructure

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

const sendGridEndpoint = "https://api.sendgrid.com/v3/mail/send"

// SendGrid delivers email through the SendGrid HTTP API. Unlike SMTP it is not
// subject to the relay's domain restrictions, which makes it a useful fallback
// when sending on behalf of arbitrary member addresses.
type SendGrid struct {
	APIKey string
	Sender string
	// Endpoint overrides the SendGrid API URL, used by tests.
	Endpoint string
	client   *http.Client
}

type sendGridPayload struct {
	Personalizations []struct {
		To []sendGridAddress `json:"to"`
	} `json:"personalizations"`
	From    sendGridAddress `json:"from"`
	ReplyTo sendGridAddress `json:"reply_to"`
	Subject string          `json:"subject"`
	Content []struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	} `json:"content"`
}

type sendGridAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

func (s *SendGrid) Send(from, to, subject, body string) error {
	if from == "" {
		from = s.Sender
	}

	payload := sendGridPayload{
		// SendGrid requires the from address to belong to a verified sender, so the
		// member's address goes in reply-to instead.
		From:    sendGridAddress{Email: s.Sender, Name: "Corkboard"},
		ReplyTo: sendGridAddress{Email: from},
		Subject: subject,
	}
	payload.Personalizations = append(payload.Personalizations, struct {
		To []sendGridAddress `json:"to"`
	}{To: []sendGridAddress{{Email: to}}})
	payload.Content = append(payload.Content, struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}{Type: "text/html", Value: body})

	encoded, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	endpoint := s.Endpoint
	if endpoint == "" {
		endpoint = sendGridEndpoint
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.APIKey)
	req.Header.Set("Content-Type", "application/json")

	response, err := s.httpClient().Do(req)
	if err != nil {
		log.Println(err)
		return err
	}
	defer response.Body.Close()

	if response.StatusCode >= http.StatusBadRequest {
		err = fmt.Errorf("sendgrid returned status %d", response.StatusCode)
		log.Println(err)
		return err
	}

	return nil
}

func (s *SendGrid) From() string {
	return s.Sender
}

func (s *SendGrid) httpClient() *http.Client {
	if s.client == nil {
		s.client = &http.Client{Timeout: 10 * time.Second}
	}
	return s.client
}
