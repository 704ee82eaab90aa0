package bubbletea

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/solace-dev/solace"
)

// moodForm is the modal mood check-in: a 1-10 score, an emotion label, and
// an optional journal note.
type moodForm struct {
	score   int
	label   textinput.Model
	journal textinput.Model
	focus   int // 0 = label, 1 = journal
}

func newMoodForm() *moodForm {
	label := textinput.New()
	label.Placeholder = "one word for how you feel"
	label.Prompt = ""
	label.CharLimit = 40
	label.Focus()

	journal := textinput.New()
	journal.Placeholder = "anything you want to note (optional)"
	journal.Prompt = ""

	return &moodForm{score: 5, label: label, journal: journal}
}

func (f *moodForm) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyLeft:
		if f.score > solace.MoodScoreMin {
			f.score--
		}
		return nil
	case tea.KeyRight:
		if f.score < solace.MoodScoreMax {
			f.score++
		}
		return nil
	case tea.KeyTab, tea.KeyShiftTab:
		f.focus = 1 - f.focus
		if f.focus == 0 {
			f.journal.Blur()
			return f.label.Focus()
		}
		f.label.Blur()
		return f.journal.Focus()
	}

	var cmd tea.Cmd
	if f.focus == 0 {
		f.label, cmd = f.label.Update(msg)
	} else {
		f.journal, cmd = f.journal.Update(msg)
	}
	return cmd
}

func (f *moodForm) view(width int, styles Styles) string {
	var b strings.Builder
	b.WriteString(styles.Accent.Render("Mood check-in"))
	b.WriteString("\n\n")

	b.WriteString("How are you feeling, 1 (lowest) to 10 (highest)?\n")
	var scale []string
	for s := solace.MoodScoreMin; s <= solace.MoodScoreMax; s++ {
		n := strconv.Itoa(s)
		if s == f.score {
			n = styles.Accent.Render("[" + n + "]")
		}
		scale = append(scale, n)
	}
	b.WriteString(strings.Join(scale, " "))
	b.WriteString("\n\n")

	b.WriteString(styles.Muted.Render("emotion: "))
	b.WriteString(f.label.View())
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("journal: "))
	b.WriteString(f.journal.View())
	b.WriteString("\n\n")
	b.WriteString(styles.Muted.Render("←/→ adjust score · tab switch field · enter submit · esc cancel"))

	return styles.Overlay.Width(min(width-4, 72)).Render(b.String())
}
