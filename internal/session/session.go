package session

import (
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/Mialde/Micheldekker/internal/common"
	"github.com/Mialde/Micheldekker/internal/domain/user"
)

// Session is the in-memory record of an authenticated staff user. It exists
// only between login and logout; a process restart drops every session.
type Session struct {
	Token     string
	User      user.AppUser
	StartedAt time.Time
	View      *ViewState
}

type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

func (m *Manager) Create(u user.AppUser) (*Session, error) {
	token, err := generateToken()
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to generate session token", err)
	}
	sess := &Session{
		Token:     token,
		User:      u,
		StartedAt: time.Now().UTC(),
		View:      NewViewState(),
	}
	m.mu.Lock()
	m.sessions[token] = sess
	m.mu.Unlock()
	return sess, nil
}

func (m *Manager) Get(token string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[token]
	return sess, ok
}

func (m *Manager) Remove(token string) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, ok := m.sessions[token]
	if ok {
		delete(m.sessions, token)
	}
	return sess, ok
}

func generateToken() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", b), nil
}
