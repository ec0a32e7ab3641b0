package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each card or screen is a View with its own model, update, and render.
// Views are embedded into the host program's root model, which owns all
// state and intercepts the intent messages they emit.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
