// Package session stores active login sessions in memory. Sessions are
// not part of the persisted snapshot and die with the process.
package session

import (
	"context"
	"sync"

	"github.com/milkledger/server/internal/model"
)

var _ model.SessionStore = (*Memory)(nil)

// Memory is an in-memory session store keyed by token.
type Memory struct {
	mu       sync.Mutex
	sessions map[string]model.Session
}

// NewMemory creates an empty session store.
func NewMemory() *Memory {
	return &Memory{sessions: make(map[string]model.Session)}
}

func (m *Memory) Create(ctx context.Context, session model.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.Token] = session
	return nil
}

func (m *Memory) GetByToken(ctx context.Context, token string) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[token]
	if !ok {
		return model.Session{}, model.ErrNotFound
	}
	return session, nil
}

// Delete removes the session. Deleting an unknown token is a no-op.
func (m *Memory) Delete(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
	return nil
}
