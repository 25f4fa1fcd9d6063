// Package sessionstore provides the backends for ports.SessionStore: one
// opaque token under one fixed key. No backend ever returns an error to the
// caller; unavailable storage degrades to "no token".
package sessionstore

import (
	"context"
	"sync"

	"github.com/culturahub/portal/internal/core/ports"
)

// Memory keeps the token in process memory.
type Memory struct {
	mu    sync.RWMutex
	token string
	set   bool
}

var _ ports.SessionStore = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Get(_ context.Context) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.set
}

func (m *Memory) Set(_ context.Context, token string) {
	m.mu.Lock()
	m.token, m.set = token, true
	m.mu.Unlock()
}

func (m *Memory) Clear(_ context.Context) {
	m.mu.Lock()
	m.token, m.set = "", false
	m.mu.Unlock()
}
