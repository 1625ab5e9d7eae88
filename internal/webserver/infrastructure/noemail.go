package infrastructure

// NoEmail is used when no email provider has been configured. Features that
// depend on sending emails check for it and disable themselves.
type NoEmail struct {
}

func (s *NoEmail) Send(from, to, subject, body string) error {
	return nil
}

func (s *NoEmail) From() string {
	return ""
}
