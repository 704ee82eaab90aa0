// Package bubbletea provides the Bubble Tea TUI for the solace companion.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/solace-dev/solace/cache"
)

// Run creates and runs the Bubble Tea TUI program. It blocks until the
// program exits. When the context is cancelled the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// SessionStartedMsg signals that a session start attempt finished.
type SessionStartedMsg struct {
	Err error
}

// SendDoneMsg signals that a message send finished.
type SendDoneMsg struct {
	Err error
}

// MoodDoneMsg signals that a mood check-in submission finished.
type MoodDoneMsg struct {
	Err error
}

// CacheUpdateMsg delivers a cache change notification to the model.
type CacheUpdateMsg struct {
	Key cache.Key
}
