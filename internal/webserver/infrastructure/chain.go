package infrastructure

import (
	"fmt"
	"log"
)

type sender interface {
	Send(from, to, subject, body string) error
	From() string
}

// Chain tries each configured email provider in order until one of them manages
// to deliver the message. Best effort: there are no retries within a provider,
// a failure just moves on to the next one.
type Chain struct {
	Senders []sender
}

func NewChain(senders ...sender) *Chain {
	return &Chain{Senders: senders}
}

func (c *Chain) Send(from, to, subject, body string) error {
	if len(c.Senders) == 0 {
		return fmt.Errorf("no email providers configured")
	}

	var err error
	for _, s := range c.Senders {
		if err = s.Send(from, to, subject, body); err == nil {
			return nil
		}
		log.Printf("email provider failed, trying next: %s\n", err)
	}
	return err
}

func (c *Chain) From() string {
	if len(c.Senders) == 0 {
		return ""
	}
	return c.Senders[0].From()
}
