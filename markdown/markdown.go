// Package markdown renders companion replies to ANSI-styled terminal output
// using goldmark for parsing and lipgloss for styling. The supported subset
// is prose: paragraphs, headings, emphasis, lists, blockquotes, and links.
package markdown

import "github.com/solace-dev/solace"

// Render parses markdown source and returns ANSI-styled terminal output.
// Paragraphs and list items are word-wrapped to width.
func Render(source string, width int, theme solace.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(theme)
	return r.render([]byte(source), width)
}
