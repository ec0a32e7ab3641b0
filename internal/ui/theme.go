package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the cards.
const (
	ColorAccent    = "86"  // cyan/green - display names, counters
	ColorHighlight = "205" // magenta - focused elements, chips
	ColorMuted     = "241" // gray - captions, hints
	ColorText      = "252" // light gray - body text
	ColorLink      = "39"  // blue - links
	ColorActive    = "214" // gold - favourited state
)

// Theme carries every style and spacing value the cards use. It is
// passed explicitly into each view so rendering never reads global
// state and tests run without a live terminal.
type Theme struct {
	DisplayName lipgloss.Style // account display names
	Link        lipgloss.Style // username links, author lines
	Body        lipgloss.Style // rich-text body copy
	Caption     lipgloss.Style // joined date, banner text
	Counter     lipgloss.Style // triptych numbers
	FieldLabel  lipgloss.Style // custom field names
	FieldValue  lipgloss.Style // custom field values (accent)
	Chip        lipgloss.Style // tag chips
	Action      lipgloss.Style // action row controls
	ActionOn    lipgloss.Style // favourited action control
	Focused     lipgloss.Style // the element the cursor is on
	Divider     lipgloss.Style // triptych separators
	Card        lipgloss.Style // outer card border

	// Spacing in blank lines/columns between card sections.
	SpaceXXS int
	SpaceXS  int
}

// DefaultTheme returns the stock theme.
func DefaultTheme() Theme {
	return Theme{
		DisplayName: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)),
		Link:        lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLink)).Underline(true),
		Body:        lipgloss.NewStyle().Foreground(lipgloss.Color(ColorText)),
		Caption:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
		Counter:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent)),
		FieldLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
		FieldValue:  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)),
		Chip:        lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)),
		Action:      lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
		ActionOn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorActive)),
		Focused:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorHighlight)),
		Divider:     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorMuted)).
			Padding(0, 1),
		SpaceXXS: 1,
		SpaceXS:  2,
	}
}
