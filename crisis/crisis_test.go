package crisis_test

import (
	"testing"
	"time"

	"github.com/solace-dev/solace"
	"github.com/solace-dev/solace/crisis"
	"github.com/stretchr/testify/assert"
)

func severeAlert(created time.Time) solace.RiskAlert {
	return solace.RiskAlert{
		UserID:        "user-1",
		Source:        "chat",
		Severity:      solace.RiskHigh,
		TriggerReason: "crisis keywords detected",
		CreatedAt:     created,
	}
}

func TestMonitor_InitiallyHidden(t *testing.T) {
	t.Parallel()
	m := crisis.NewMonitor()
	assert.False(t, m.Visible())
}

func TestMonitor_SignalMessageShows(t *testing.T) {
	t.Parallel()
	m := crisis.NewMonitor()
	m.SignalMessage()
	assert.True(t, m.Visible())
}

func TestMonitor_SignalMoodShows(t *testing.T) {
	t.Parallel()
	m := crisis.NewMonitor()
	m.SignalMood()
	assert.True(t, m.Visible())

	// Like a message signal, a fresh mood signal re-opens after dismissal.
	m.Dismiss()
	m.SignalMood()
	assert.True(t, m.Visible())
}

func TestMonitor_RepeatedSignalsAreNoOps(t *testing.T) {
	t.Parallel()
	m := crisis.NewMonitor()

	var changes int
	m.OnChange(func(bool) { changes++ })

	m.SignalMessage()
	m.SignalMessage()
	m.SignalMessage()

	assert.True(t, m.Visible())
	assert.Equal(t, 1, changes, "showing an already-shown overlay must be a no-op")
}

func TestMonitor_DismissHides(t *testing.T) {
	t.Parallel()
	m := crisis.NewMonitor()
	m.SignalMessage()
	m.Dismiss()
	assert.False(t, m.Visible())
}

func TestMonitor_DismissWhileHiddenIsNoOp(t *testing.T) {
	t.Parallel()
	m := crisis.NewMonitor()
	m.Dismiss()
	assert.False(t, m.Visible())
}

func TestMonitor_ObserveAlertsShowsOnSevere(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		alert   solace.RiskAlert
		visible bool
	}{
		{"high severity", solace.RiskAlert{Severity: solace.RiskHigh}, true},
		{"extreme severity", solace.RiskAlert{Severity: solace.RiskExtreme}, true},
		{"medium severity", solace.RiskAlert{Severity: solace.RiskMedium}, false},
		{"low severity", solace.RiskAlert{Severity: solace.RiskLow}, false},
		{"resolved high", solace.RiskAlert{Severity: solace.RiskHigh, Resolved: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := crisis.NewMonitor()
			m.ObserveAlerts([]solace.RiskAlert{tt.alert})
			assert.Equal(t, tt.visible, m.Visible())
		})
	}
}

func TestMonitor_SameAlertDoesNotReopenAfterDismiss(t *testing.T) {
	t.Parallel()

	alert := severeAlert(time.Unix(1000, 0))
	m := crisis.NewMonitor()

	m.ObserveAlerts([]solace.RiskAlert{alert})
	assert.True(t, m.Visible())

	m.Dismiss()
	assert.False(t, m.Visible())

	// Re-polling the same still-unresolved alert must not re-open.
	m.ObserveAlerts([]solace.RiskAlert{alert})
	assert.False(t, m.Visible())
}

func TestMonitor_NewAlertReopensAfterDismiss(t *testing.T) {
	t.Parallel()

	first := severeAlert(time.Unix(1000, 0))
	m := crisis.NewMonitor()

	m.ObserveAlerts([]solace.RiskAlert{first})
	m.Dismiss()

	// A distinct alert (different creation time) is a new triggering event.
	second := severeAlert(time.Unix(2000, 0))
	m.ObserveAlerts([]solace.RiskAlert{first, second})
	assert.True(t, m.Visible())
}

func TestMonitor_MessageSignalReopensAfterDismiss(t *testing.T) {
	t.Parallel()

	m := crisis.NewMonitor()
	m.ObserveAlerts([]solace.RiskAlert{severeAlert(time.Unix(1000, 0))})
	m.Dismiss()

	// A fresh chat risk signal is always a distinct event.
	m.SignalMessage()
	assert.True(t, m.Visible())
}

func TestMonitor_OnChangeReportsTransitions(t *testing.T) {
	t.Parallel()

	m := crisis.NewMonitor()
	var seen []bool
	m.OnChange(func(v bool) { seen = append(seen, v) })

	m.SignalMessage()
	m.Dismiss()
	m.SignalMessage()

	assert.Equal(t, []bool{true, false, true}, seen)
}
