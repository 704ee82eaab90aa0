package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var _ MessageBlock = (*UserMessageBlock)(nil)

// UserMessageBlock renders a user message with a "> " prefix. Risk-flagged
// messages carry a flag marker.
type UserMessageBlock struct {
	text     string
	riskFlag bool
	styles   Styles
}

// NewUserMessageBlock creates a UserMessageBlock.
func NewUserMessageBlock(text string, riskFlag bool, styles Styles) *UserMessageBlock {
	return &UserMessageBlock{text: text, riskFlag: riskFlag, styles: styles}
}

func (b *UserMessageBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *UserMessageBlock) View(width int) string {
	content := b.styles.UserMsg.Render("> ") + b.text
	if b.riskFlag {
		content += " " + b.styles.Risk.Render("⚑")
	}
	return lipgloss.NewStyle().Width(width).Render(content)
}
