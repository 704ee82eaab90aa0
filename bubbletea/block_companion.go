package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/solace-dev/solace"
	"github.com/solace-dev/solace/markdown"
)

var _ MessageBlock = (*CompanionBlock)(nil)

// CompanionBlock renders a companion reply as markdown. Risk-flagged replies
// are preceded by a crisis banner line.
type CompanionBlock struct {
	text     string
	riskFlag bool
	theme    solace.Theme
	styles   Styles
}

// NewCompanionBlock creates a CompanionBlock.
func NewCompanionBlock(text string, riskFlag bool, theme solace.Theme, styles Styles) *CompanionBlock {
	return &CompanionBlock{text: text, riskFlag: riskFlag, theme: theme, styles: styles}
}

func (b *CompanionBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	return b, nil
}

func (b *CompanionBlock) View(width int) string {
	rendered := markdown.Render(b.text, width, b.theme)
	if b.riskFlag {
		return b.styles.Risk.Render("⚑ support resources are available, press ctrl+r") + "\n" + rendered
	}
	return rendered
}
