package bubbletea

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/solace-dev/solace"
	"github.com/solace-dev/solace/cache"
	"github.com/solace-dev/solace/chat"
	"github.com/solace-dev/solace/crisis"
	"github.com/solace-dev/solace/risk"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model for the companion TUI. It composes the
// conversation orchestrator, the cache coordinator, and the crisis monitor:
// all state transitions flow through Update, so the overlay and the
// transcript can never disagree with the components that own them.
type Model struct {
	// Input is the message input component. Exported for test access.
	Input textinput.Model
	// Viewport is the scrollable transcript area. Exported for test access.
	Viewport viewport.Model

	backend solace.Backend
	conv    *chat.Orchestrator
	store   *cache.Coordinator
	monitor *crisis.Monitor
	theme   solace.Theme
	styles  Styles

	blocks  []MessageBlock
	mood    *moodForm // non-nil while the check-in form is open
	sending bool
	err     error
	ready   bool
	height  int
}

// New creates a new TUI Model.
func New(backend solace.Backend, conv *chat.Orchestrator, store *cache.Coordinator, monitor *crisis.Monitor, theme solace.Theme) Model {
	ti := textinput.New()
	ti.Placeholder = "Share what's on your mind..."
	ti.Prompt = ""
	ti.Focus()
	ti.CharLimit = 0

	return Model{
		Input:   ti,
		backend: backend,
		conv:    conv,
		store:   store,
		monitor: monitor,
		theme:   theme,
		styles:  NewStyles(theme),
	}
}

// Sending returns whether a message send is in flight.
func (m Model) Sending() bool { return m.sending }

// Err returns the last error, if any.
func (m Model) Err() error { return m.err }

// MoodFormOpen returns whether the mood check-in form is open.
func (m Model) MoodFormOpen() bool { return m.mood != nil }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.startSession(), m.primeCaches(), m.listenForUpdate())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SessionStartedMsg:
		if msg.Err != nil && !errors.Is(msg.Err, chat.ErrSuperseded) {
			m.err = msg.Err
			m.blocks = append(m.blocks, NewErrorBlock(msg.Err, m.styles))
		} else {
			m = m.rebuildTranscript()
		}
		m.refreshViewport()
		return m, nil

	case SendDoneMsg:
		m.sending = false
		if msg.Err != nil {
			m.err = msg.Err
		}
		m = m.rebuildTranscript()
		m.refreshViewport()
		cmds = append(cmds, m.Input.Focus())
		return m, tea.Batch(cmds...)

	case MoodDoneMsg:
		m.mood = nil
		if msg.Err != nil {
			m.err = msg.Err
		}
		cmds = append(cmds, m.Input.Focus())
		return m, tea.Batch(cmds...)

	case CacheUpdateMsg:
		// Read refetches a stale entry; a fresh entry is returned as-is.
		entry := m.store.Read(msg.Key)
		if msg.Key == cache.KeyActiveAlerts && !entry.Stale {
			if alerts, ok := entry.Value.([]solace.RiskAlert); ok {
				m.monitor.ObserveAlerts(alerts)
			}
		}
		return m, m.listenForUpdate()
	}

	// Pass remaining messages to sub-components. The viewport always
	// receives messages for scrolling.
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	cmds = append(cmds, cmd)

	if !m.sending && m.mood == nil {
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Connecting..."
	}

	if m.monitor.Visible() {
		return overlayView(m.Viewport.Width, m.height, m.styles)
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	if m.mood != nil {
		b.WriteString(m.mood.view(m.Viewport.Width, m.styles))
	} else {
		b.WriteString(m.Input.View())
	}
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	inputH := 1
	statusH := 1
	borderH := 2
	vpHeight := msg.Height - inputH - statusH - borderH
	if vpHeight < 1 {
		vpHeight = 1
	}

	m.height = msg.Height
	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m = m.rebuildTranscript()
		m.refreshViewport()
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
		m.Viewport.SetContent(m.renderContent())
	}

	m.Input.Width = msg.Width
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The overlay captures every key until dismissed.
	if m.monitor.Visible() {
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.monitor.Dismiss()
		case tea.KeyCtrlC:
			return m, tea.Quit
		}
		return m, nil
	}

	if m.mood != nil {
		switch msg.Type {
		case tea.KeyEsc:
			m.mood = nil
			return m, m.Input.Focus()
		case tea.KeyEnter:
			form := m.mood
			return m, m.submitMood(form.score, form.label.Value(), form.journal.Value())
		case tea.KeyCtrlC:
			return m, tea.Quit
		}
		return m, m.mood.handleKey(msg)
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEnter:
		if m.sending {
			return m, nil
		}
		text := strings.TrimSpace(m.Input.Value())
		if text == "" {
			return m, nil
		}
		return m.submitInput(text)

	case tea.KeyCtrlN:
		if m.sending {
			return m, nil
		}
		return m, m.startSession()

	case tea.KeyCtrlO:
		m.mood = newMoodForm()
		m.Input.Blur()
		return m, textinput.Blink

	case tea.KeyCtrlR:
		// Reopen the support resources overlay on demand.
		m.monitor.SignalMessage()
		return m, nil
	}

	// When idle, pass keys to both the input (for typing) and the viewport
	// (for scrolling). Only forward non-character keys to the viewport.
	if !m.sending {
		var cmd tea.Cmd
		var cmds []tea.Cmd
		if msg.Type != tea.KeyRunes {
			m.Viewport, cmd = m.Viewport.Update(msg)
			cmds = append(cmds, cmd)
		}
		m.Input, cmd = m.Input.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) submitInput(text string) (tea.Model, tea.Cmd) {
	m.Input.SetValue("")
	m.Input.Blur()
	m.err = nil
	m.sending = true

	// Local echo; the canonical transcript is rebuilt when the send
	// completes.
	flagged := risk.Classify(text).Crisis
	m.blocks = append(m.blocks, NewUserMessageBlock(text, flagged, m.styles))
	m.refreshViewport()

	return m, m.sendMessage(text)
}

// rebuildTranscript replaces the blocks with the orchestrator's transcript.
func (m Model) rebuildTranscript() Model {
	msgs := m.conv.Messages()
	blocks := make([]MessageBlock, 0, len(msgs))
	for _, msg := range msgs {
		switch msg.Sender {
		case solace.SenderUser:
			blocks = append(blocks, NewUserMessageBlock(msg.Text, msg.RiskFlag, m.styles))
		case solace.SenderAI:
			blocks = append(blocks, NewCompanionBlock(msg.Text, msg.RiskFlag, m.theme, m.styles))
		}
	}
	m.blocks = blocks
	return m
}

func (m *Model) refreshViewport() {
	m.Viewport.SetContent(m.renderContent())
	m.Viewport.GotoBottom()
}

func (m Model) renderContent() string {
	if len(m.blocks) == 0 {
		return ""
	}
	var b strings.Builder
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(block.View(m.Viewport.Width))
	}
	return b.String()
}

func (m Model) statusLine() string {
	if m.err != nil {
		return m.styles.Error.Render(fmt.Sprintf("Error: %v", m.err))
	}
	if m.sending {
		return m.styles.Muted.Render("Solace is listening...")
	}

	var parts []string
	if alerts, ok := m.store.Peek(cache.KeyActiveAlerts).Value.([]solace.RiskAlert); ok {
		severe := 0
		for _, a := range alerts {
			if !a.Resolved && a.Severity.Severe() {
				severe++
			}
		}
		if severe > 0 {
			parts = append(parts, m.styles.Risk.Render(fmt.Sprintf("⚑ %d active alert(s)", severe)))
		}
	}
	if trend, ok := m.store.Peek(cache.KeyMoodTrend).Value.([]solace.TrendPoint); ok && len(trend) > 0 {
		latest := trend[len(trend)-1]
		parts = append(parts, m.styles.Success.Render(fmt.Sprintf("mood %.1f", latest.Score)))
	}
	parts = append(parts, m.styles.Muted.Render("enter send · ctrl+n new session · ctrl+o mood check-in · ctrl+c quit"))
	return strings.Join(parts, "  ")
}

func (m Model) startSession() tea.Cmd {
	conv := m.conv
	return func() tea.Msg {
		_, err := conv.StartSession(context.Background())
		return SessionStartedMsg{Err: err}
	}
}

func (m Model) sendMessage(text string) tea.Cmd {
	conv := m.conv
	return func() tea.Msg {
		return SendDoneMsg{Err: conv.Send(context.Background(), text)}
	}
}

func (m Model) submitMood(score int, label, journal string) tea.Cmd {
	backend, store, monitor := m.backend, m.store, m.monitor
	return func() tea.Msg {
		if err := backend.SubmitMoodEntry(context.Background(), score, label, journal); err != nil {
			return MoodDoneMsg{Err: err}
		}
		store.Invalidate(cache.MoodSubmitted()...)
		if score <= solace.LowMoodThreshold {
			monitor.SignalMood()
		}
		return MoodDoneMsg{}
	}
}

// primeCaches kicks off background fetches for the status keys on load, so
// an already-active severe alert opens the overlay immediately instead of
// waiting for the first refresh tick. The results arrive as cache update
// notifications.
func (m Model) primeCaches() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		store.Read(cache.KeyActiveAlerts)
		store.Read(cache.KeyMoodTrend)
		return nil
	}
}

// listenForUpdate waits for the next cache change notification.
func (m Model) listenForUpdate() tea.Cmd {
	ch := m.store.Updates()
	return func() tea.Msg {
		return CacheUpdateMsg{Key: <-ch}
	}
}
