// Package crisis decides when the blocking crisis overlay is visible.
//
// The overlay is a two-state machine: hidden and shown. It opens on a crisis
// signal from chat or on observing an unacknowledged high-severity alert, and
// closes only on explicit user dismissal. Repeated triggers while shown are
// no-ops, and re-observing an alert that was visible at dismissal time never
// re-opens the overlay; only a genuinely new triggering event does.
package crisis

import (
	"context"
	"sync"

	"github.com/qmuntal/stateless"
	"github.com/solace-dev/solace"
)

var (
	stateHidden stateless.State = "hidden"
	stateShown  stateless.State = "shown"
)

var (
	triggerShow    stateless.Trigger = "show"
	triggerDismiss stateless.Trigger = "dismiss"
)

// Monitor is the crisis overlay state machine. Its lifetime is scoped to one
// view session: create a fresh Monitor when the chat/dashboard view mounts.
// Monitor is safe for concurrent use.
type Monitor struct {
	mu       sync.Mutex
	fsm      *stateless.StateMachine
	acked    map[string]struct{} // alert fingerprints acknowledged by a dismissal
	observed map[string]struct{} // alert fingerprints visible in the latest poll
	onChange func(visible bool)
}

// NewMonitor creates a Monitor in the hidden state.
func NewMonitor() *Monitor {
	m := &Monitor{
		acked:    make(map[string]struct{}),
		observed: make(map[string]struct{}),
	}

	fsm := stateless.NewStateMachine(stateHidden)
	fsm.Configure(stateHidden).
		Permit(triggerShow, stateShown).
		Ignore(triggerDismiss)
	fsm.Configure(stateShown).
		Permit(triggerDismiss, stateHidden).
		Ignore(triggerShow). // showing an already-shown overlay is a no-op
		OnEntry(func(_ context.Context, _ ...any) error {
			m.notify(true)
			return nil
		}).
		OnExit(func(_ context.Context, _ ...any) error {
			m.notify(false)
			return nil
		})
	m.fsm = fsm
	return m
}

// OnChange registers a callback invoked when visibility flips. The callback
// runs on the goroutine that caused the transition.
func (m *Monitor) OnChange(fn func(visible bool)) {
	m.mu.Lock()
	m.onChange = fn
	m.mu.Unlock()
}

// Visible reports whether the overlay is currently shown.
func (m *Monitor) Visible() bool {
	return m.fsm.MustState() == stateShown
}

// SignalMessage escalates due to a crisis signal detected in chat text,
// on either the user's or the companion's side. Each call is a distinct
// triggering event: after a dismissal, the next signal re-opens the overlay.
func (m *Monitor) SignalMessage() {
	_ = m.fsm.Fire(triggerShow)
}

// SignalMood escalates due to a low-score mood check-in. Like SignalMessage,
// each call is a distinct triggering event.
func (m *Monitor) SignalMood() {
	_ = m.fsm.Fire(triggerShow)
}

// ObserveAlerts feeds the latest active-alert poll into the monitor.
// Unresolved alerts at high or extreme severity open the overlay unless every
// one of them was already acknowledged by a previous dismissal.
func (m *Monitor) ObserveAlerts(alerts []solace.RiskAlert) {
	m.mu.Lock()
	fresh := false
	m.observed = make(map[string]struct{})
	for _, a := range alerts {
		if a.Resolved || !a.Severity.Severe() {
			continue
		}
		fp := a.Fingerprint()
		m.observed[fp] = struct{}{}
		if _, ok := m.acked[fp]; !ok {
			fresh = true
		}
	}
	m.mu.Unlock()

	if fresh {
		_ = m.fsm.Fire(triggerShow)
	}
}

// Dismiss hides the overlay on explicit user acknowledgement. The alerts
// visible in the latest poll are recorded so re-observing them does not
// re-open the overlay within this view session.
func (m *Monitor) Dismiss() {
	m.mu.Lock()
	for fp := range m.observed {
		m.acked[fp] = struct{}{}
	}
	m.mu.Unlock()
	_ = m.fsm.Fire(triggerDismiss)
}

func (m *Monitor) notify(visible bool) {
	m.mu.Lock()
	fn := m.onChange
	m.mu.Unlock()
	if fn != nil {
		fn(visible)
	}
}
