package solace

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme.
type Theme struct {
	UserMsg   int // User message accent
	Companion int // Companion reply text
	Risk      int // Risk-flagged reply highlight
	Error     int // Error messages
	Success   int // Success indicators
	Muted     int // Status bar, placeholders
	Accent    int // Headings, links
	Overlay   int // Crisis overlay border and headline
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		UserMsg:   4,
		Companion: 7,
		Risk:      3,
		Error:     1,
		Success:   2,
		Muted:     8,
		Accent:    5,
		Overlay:   1,
	}
}
