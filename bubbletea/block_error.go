package bubbletea

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/solace-dev/solace"
)

var _ MessageBlock = (*ErrorBlock)(nil)

// ErrorBlock renders an error inline in the conversation. Connection
// problems get supportive copy instead of the raw error text, since the
// person reading may be in distress.
type ErrorBlock struct {
	err    error
	styles Styles
}

// NewErrorBlock creates an ErrorBlock.
func NewErrorBlock(err error, styles Styles) *ErrorBlock {
	return &ErrorBlock{err: err, styles: styles}
}

func (b *ErrorBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *ErrorBlock) View(width int) string {
	var content string
	switch {
	case errors.Is(b.err, solace.ErrNotConnected), errors.Is(b.err, solace.ErrRemoteCall):
		content = b.styles.Error.Render("Error: we're having trouble reaching the service.") +
			"\n" + b.styles.Muted.Render("Your words aren't lost. Please try again in a moment.")
	default:
		content = b.styles.Error.Render(fmt.Sprintf("Error: %v", b.err))
	}
	return lipgloss.NewStyle().Width(width).Render(content)
}
