package mocks

import (
	"sync"

	"ppalog/internal/core/ports"
)

// Notification is one recorded user-facing message.
type Notification struct {
	Title       string
	Description string
}

// NotifierMock records notifications for assertion.
type NotifierMock struct {
	mu        sync.Mutex
	Successes []Notification
	Errors    []Notification
}

var _ ports.Notifier = (*NotifierMock)(nil)

func NewNotifierMock() *NotifierMock {
	return &NotifierMock{}
}

func (m *NotifierMock) Success(title, description string) {
	m.mu.Lock()
	m.Successes = append(m.Successes, Notification{title, description})
	m.mu.Unlock()
}

func (m *NotifierMock) Error(title, description string) {
	m.mu.Lock()
	m.Errors = append(m.Errors, Notification{title, description})
	m.mu.Unlock()
}
