package infrastructure

import (
	"errors"
	"sync"
)

var errSendFailed = errors.New("send failed")

type SenderMock struct {
	calledSend  bool
	lastFrom    string
	lastTo      string
	lastSubject string
	lastBody    string
	fail        bool
	mu          sync.Mutex
	Wg          sync.WaitGroup
}

func (s *SenderMock) Send(from, to, subject, body string) error {
	defer s.Wg.Done()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errSendFailed
	}
	s.calledSend = true
	s.lastFrom = from
	s.lastTo = to
	s.lastSubject = subject
	s.lastBody = body
	return nil
}

func (s *SenderMock) From() string {
	return "corkboard@example.com"
}

func (s *SenderMock) CalledSend() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calledSend
}

func (s *SenderMock) LastFrom() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastFrom
}

func (s *SenderMock) LastTo() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTo
}

func (s *SenderMock) LastBody() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastBody
}

func (s *SenderMock) FailNext(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = fail
}
