// Package chat owns the chat session lifecycle and the local transcript of
// the active session, orchestrating sends through the backend and risk
// classification of both sides of the exchange.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/solace-dev/solace"
)

// ErrSuperseded indicates a Start call lost to a later concurrent Start; its
// session was discarded, not applied. Callers can ignore it: the winning
// Start owns the active session.
var ErrSuperseded = errors.New("session start superseded")

// endTimeout bounds the best-effort EndChatSession calls issued outside a
// caller context.
const endTimeout = 10 * time.Second

// SessionManager creates and ends chat sessions against the backend. Exactly
// one session is active at a time. When concurrent Start calls race, the last
// call to begin wins: an earlier creation whose result arrives later is
// discarded and its orphaned remote session is closed best-effort.
// SessionManager is safe for concurrent use.
type SessionManager struct {
	backend solace.Backend
	logger  *slog.Logger

	mu      sync.Mutex
	current *solace.Session
	attempt uint64
}

// NewSessionManager creates a SessionManager. A nil logger defaults to
// slog.Default().
func NewSessionManager(backend solace.Backend, logger *slog.Logger) *SessionManager {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionManager{backend: backend, logger: logger}
}

// Start requests a new session from the remote service and makes it the
// active one. The previous session is replaced, and closed best-effort, only
// once creation succeeds; a failed creation leaves it active. Start fails
// with solace.ErrNotConnected before issuing the call when the backend is not
// live, and with ErrSuperseded when a later Start overtook this one.
func (m *SessionManager) Start(ctx context.Context) (solace.Session, error) {
	if !m.backend.Ready() {
		return solace.Session{}, solace.ErrNotConnected
	}

	m.mu.Lock()
	m.attempt++
	attempt := m.attempt
	m.mu.Unlock()

	id, err := m.backend.CreateChatSession(ctx)
	if err != nil {
		return solace.Session{}, fmt.Errorf("create chat session: %w", err)
	}

	sess := solace.Session{ID: id, OpenedAt: time.Now()}

	m.mu.Lock()
	if attempt != m.attempt {
		m.mu.Unlock()
		m.endQuietly(id)
		return solace.Session{}, ErrSuperseded
	}
	prev := m.current
	m.current = &sess
	m.mu.Unlock()

	if prev != nil {
		m.endQuietly(prev.ID)
	}
	return sess, nil
}

// End closes the active session. The remote notification is best-effort: its
// failure is logged, never surfaced, and does not block a subsequent Start.
func (m *SessionManager) End(ctx context.Context) {
	m.mu.Lock()
	sess := m.current
	m.current = nil
	m.mu.Unlock()

	if sess == nil {
		return
	}
	if err := m.backend.EndChatSession(ctx, sess.ID); err != nil {
		m.logger.Warn("end chat session failed", "session", sess.ID, "error", err)
	}
}

// Current returns the active session, if any.
func (m *SessionManager) Current() (solace.Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return solace.Session{}, false
	}
	return *m.current, true
}

func (m *SessionManager) endQuietly(id uint64) {
	ctx, cancel := context.WithTimeout(context.Background(), endTimeout)
	defer cancel()
	if err := m.backend.EndChatSession(ctx, id); err != nil {
		m.logger.Warn("end chat session failed", "session", id, "error", err)
	}
}
