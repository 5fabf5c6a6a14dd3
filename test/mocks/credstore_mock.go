package mocks

import (
	"sync"

	"ppalog/internal/core/ports"
)

// CredStoreMock is an in-memory ports.CredentialStore with error
// injection and call tracking.
type CredStoreMock struct {
	mu    sync.Mutex
	token string

	SaveCalls  int
	ClearCalls int

	LoadError  error
	SaveError  error
	ClearError error
}

var _ ports.CredentialStore = (*CredStoreMock)(nil)

func NewCredStoreMock() *CredStoreMock {
	return &CredStoreMock{}
}

// Seed stores a token for test setup.
func (m *CredStoreMock) Seed(token string) {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
}

// Token returns the currently stored token.
func (m *CredStoreMock) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *CredStoreMock) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadError != nil {
		return "", m.LoadError
	}
	return m.token, nil
}

func (m *CredStoreMock) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveError != nil {
		return m.SaveError
	}
	m.token = token
	return nil
}

func (m *CredStoreMock) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ClearCalls++
	if m.ClearError != nil {
		return m.ClearError
	}
	m.token = ""
	return nil
}
