package infrastructure

import "sync"

type WhatsAppMock struct {
	calledSend       bool
	lastPhone        string
	lastPlaceholders []string
	mu               sync.Mutex
}

func (w *WhatsAppMock) SendTemplate(phone string, placeholders []string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.calledSend = true
	w.lastPhone = phone
	w.lastPlaceholders = placeholders
	return nil
}

func (w *WhatsAppMock) CalledSend() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.calledSend
}

func (w *WhatsAppMock) LastPhone() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastPhone
}
