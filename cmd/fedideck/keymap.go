package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"fedideck/internal/ui"
)

// keyMap holds the shell's global bindings for the help bar.
// Pane-local keys (focus movement, action shortcuts) belong to the
// views and are not listed here.
type keyMap struct {
	Timeline      key.Binding
	Profile       key.Binding
	Notifications key.Binding
	Expand        key.Binding
	Back          key.Binding
	Quit          key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Timeline: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "timeline"),
		),
		Profile: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "profile"),
		),
		Notifications: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "notifications"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "expand"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Timeline, k.Profile, k.Notifications, k.Expand, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newHelpModel() help.Model {
	m := help.New()
	m.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.ColorHighlight)).
		Bold(true)
	m.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.ColorMuted))
	m.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ui.ColorMuted))
	return m
}
