package bubbletea

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// overlayView renders the full-screen crisis resources overlay. It replaces
// the main view while the crisis monitor reports visible.
func overlayView(width, height int, styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Risk.Render("You are not alone."))
	b.WriteString("\n\n")
	b.WriteString("If you are in immediate danger, call 911.\n\n")
	b.WriteString(styles.Accent.Render("988 Suicide & Crisis Lifeline"))
	b.WriteString("\n")
	b.WriteString("  Call or text 988, any time.\n\n")
	b.WriteString(styles.Accent.Render("Crisis Text Line"))
	b.WriteString("\n")
	b.WriteString("  Text HOME to 741741.\n\n")
	b.WriteString(styles.Muted.Render("Press esc to return to the conversation."))

	boxWidth := width - 8
	if boxWidth > 60 {
		boxWidth = 60
	}
	if boxWidth < 20 {
		boxWidth = 20
	}
	box := styles.Overlay.Width(boxWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
