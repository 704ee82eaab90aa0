package bubbletea_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/solace-dev/solace"
	bt "github.com/solace-dev/solace/bubbletea"
	"github.com/solace-dev/solace/cache"
	"github.com/solace-dev/solace/chat"
	"github.com/solace-dev/solace/crisis"
	"github.com/solace-dev/solace/mock"
	"github.com/stretchr/testify/require"
)

// harness bundles a model with the components it composes, so tests can
// inspect and drive them directly.
type harness struct {
	model   bt.Model
	backend *mock.Backend
	store   *cache.Coordinator
	monitor *crisis.Monitor
	conv    *chat.Orchestrator
}

// newHarness wires a model over the given backend double.
func newHarness(t *testing.T, backend *mock.Backend) *harness {
	t.Helper()
	store := cache.New()
	monitor := crisis.NewMonitor()
	sessions := chat.NewSessionManager(backend, nil)
	conv := chat.NewOrchestrator(backend, sessions, store, monitor, nil)
	m := bt.New(backend, conv, store, monitor, solace.DefaultTheme())
	return &harness{model: m, backend: backend, store: store, monitor: monitor, conv: conv}
}

// initModel sends a WindowSizeMsg to initialize the viewport.
func (h *harness) initModel(t *testing.T) {
	t.Helper()
	h.update(t, tea.WindowSizeMsg{Width: 80, Height: 24})
}

// update sends a message and keeps the updated model.
func (h *harness) update(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	updated, cmd := h.model.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	h.model = model
	return cmd
}

// updateAndRun sends a message, executes the returned command synchronously,
// and feeds the resulting message back into the model.
func (h *harness) updateAndRun(t *testing.T, msg tea.Msg) {
	t.Helper()
	cmd := h.update(t, msg)
	require.NotNil(t, cmd)
	h.update(t, cmd())
}

// startSession drives a full session start through the model.
func (h *harness) startSession(t *testing.T) {
	t.Helper()
	h.updateAndRun(t, tea.KeyMsg{Type: tea.KeyCtrlN})
}

// typeText feeds runes into the input.
func (h *harness) typeText(t *testing.T, text string) {
	t.Helper()
	h.update(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}
