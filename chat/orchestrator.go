package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/solace-dev/solace"
	"github.com/solace-dev/solace/cache"
	"github.com/solace-dev/solace/risk"
)

// Escalator receives crisis signals raised while processing messages.
type Escalator interface {
	SignalMessage()
}

// FallbackReply is appended locally when the remote send fails. It is never
// risk-flagged.
const FallbackReply = "I'm having trouble responding right now. Please try again in a moment."

// Orchestrator owns the ordered, append-only transcript for the active
// session and the message send flow: optimistic local append, dual-sided risk
// classification, crisis escalation, and cache invalidation after every
// exchange. Orchestrator is safe for concurrent use, though at most one send
// per session may be in flight.
type Orchestrator struct {
	backend  solace.Backend
	sessions *SessionManager
	cache    cache.Invalidator
	escalate Escalator
	logger   *slog.Logger

	mu      sync.Mutex
	log     []solace.Message
	pending map[uint64]bool
}

// NewOrchestrator creates an Orchestrator. A nil logger defaults to
// slog.Default().
func NewOrchestrator(backend solace.Backend, sessions *SessionManager, inv cache.Invalidator, esc Escalator, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		backend:  backend,
		sessions: sessions,
		cache:    inv,
		escalate: esc,
		logger:   logger,
		pending:  make(map[uint64]bool),
	}
}

// StartSession starts a new session and resets the transcript to the seeded
// welcome message. The welcome message is local only; it is never sent to the
// remote service. When a concurrent StartSession wins the race, the losing
// call returns ErrSuperseded and leaves the transcript alone.
func (o *Orchestrator) StartSession(ctx context.Context) (solace.Session, error) {
	sess, err := o.sessions.Start(ctx)
	if err != nil {
		return solace.Session{}, err
	}

	o.mu.Lock()
	o.log = []solace.Message{solace.WelcomeMessage(time.Now())}
	o.mu.Unlock()
	return sess, nil
}

// EndSession closes the active session best-effort and keeps the transcript
// visible until the next StartSession.
func (o *Orchestrator) EndSession(ctx context.Context) {
	o.sessions.End(ctx)
}

// Send submits user text to the active session.
//
// The user message is appended optimistically and classified before the
// network round trip; a crisis signal on the outbound side escalates
// immediately. On success the reply is classified too and appended with a
// risk flag covering both sides, and a flagged exchange signals escalation
// once more after the reply lands; on failure a fallback companion message is
// appended instead, unflagged and without retry. The session's history key
// and the active-alerts key are invalidated on success and failure alike,
// since a failed send may still have raised an outbound risk signal.
func (o *Orchestrator) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("empty message: %w", solace.ErrValidation)
	}
	sess, ok := o.sessions.Current()
	if !ok {
		return solace.ErrNoSession
	}

	out := risk.Classify(text)

	o.mu.Lock()
	if o.pending[sess.ID] {
		o.mu.Unlock()
		return solace.ErrSendPending
	}
	o.pending[sess.ID] = true
	o.log = append(o.log, solace.Message{
		ID:        uuid.NewString(),
		Sender:    solace.SenderUser,
		Text:      text,
		CreatedAt: time.Now(),
		RiskFlag:  out.Crisis,
	})
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		delete(o.pending, sess.ID)
		o.mu.Unlock()
		o.cache.Invalidate(cache.MessageExchanged(sess.ID)...)
	}()

	if out.Crisis {
		// Escalate before the network round trip.
		o.escalate.SignalMessage()
	}

	reply, err := o.backend.SendChatMessage(ctx, sess.ID, text)
	if err != nil {
		o.logger.Warn("send chat message failed", "session", sess.ID, "error", err)
		o.appendCompanion(FallbackReply, false)
		return fmt.Errorf("send chat message: %w", err)
	}

	in := risk.Classify(reply)
	flagged := out.Crisis || in.Crisis
	o.appendCompanion(reply, flagged)
	if flagged {
		// Signal again after the reply. The monitor treats repeat signals as
		// one event, but this re-opens an overlay dismissed mid-flight.
		o.escalate.SignalMessage()
	}
	return nil
}

// Messages returns a copy of the transcript in insertion order.
func (o *Orchestrator) Messages() []solace.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	msgs := make([]solace.Message, len(o.log))
	copy(msgs, o.log)
	return msgs
}

// Pending reports whether a send is in flight for the active session.
func (o *Orchestrator) Pending() bool {
	sess, ok := o.sessions.Current()
	if !ok {
		return false
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.pending[sess.ID]
}

func (o *Orchestrator) appendCompanion(text string, flagged bool) {
	o.mu.Lock()
	o.log = append(o.log, solace.Message{
		ID:        uuid.NewString(),
		Sender:    solace.SenderAI,
		Text:      text,
		CreatedAt: time.Now(),
		RiskFlag:  flagged,
	})
	o.mu.Unlock()
}
