package game

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Manager keeps the active sessions of one process. Each session still
// has its own single writer; the manager only guards the registry.
type Manager struct {
	sessions map[string]*Session // sessionID → Session
	mu       sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Create builds a session from opts, registers it and starts it.
func (m *Manager) Create(opts Options) *Session {
	session := NewSession(opts)

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	log.WithFields(log.Fields{
		"component": "manager",
		"session":   session.ID,
		"mode":      session.Mode.String(),
	}).Debug("session created")

	session.Start()
	return session
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, exists := m.sessions[id]
	return session, exists
}

// Remove closes the session and forgets it.
func (m *Manager) Remove(id string) error {
	m.mu.Lock()
	session, exists := m.sessions[id]
	if !exists {
		m.mu.Unlock()
		return fmt.Errorf("session %s not found", id)
	}
	delete(m.sessions, id)
	m.mu.Unlock()

	session.Close()
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// CleanupOldSessions drops finished sessions older than finishedTTL and
// unfinished ones created more than staleTTL ago. Sessions are checked
// without holding the registry lock, since a session may be busy with a
// bot search. It returns how many were removed.
func (m *Manager) CleanupOldSessions(finishedTTL, staleTTL time.Duration) int {
	m.mu.RLock()
	candidates := make([]*Session, 0, len(m.sessions))
	for _, session := range m.sessions {
		candidates = append(candidates, session)
	}
	m.mu.RUnlock()

	now := time.Now()
	var expired []*Session
	for _, session := range candidates {
		if session.expired(now, finishedTTL, staleTTL) {
			expired = append(expired, session)
		}
	}
	if len(expired) == 0 {
		return 0
	}

	count := 0
	m.mu.Lock()
	for _, session := range expired {
		if m.sessions[session.ID] != session {
			continue
		}
		delete(m.sessions, session.ID)
		count++
	}
	m.mu.Unlock()

	for _, session := range expired {
		session.Close()
	}

	if count > 0 {
		log.WithField("component", "manager").Infof("removed %d stale game sessions", count)
	}
	return count
}
