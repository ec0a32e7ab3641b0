package ui

import (
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fedideck/internal/imgcache"
	"fedideck/internal/mastodon"
)

// TimelineView renders a scrolling column of status cards. Handles are
// resolved against the live cache on every render, so cards fill in as
// the host's image loader completes.
type TimelineView struct {
	Statuses []mastodon.Status
	Cache    *imgcache.Cache
	Theme    Theme
	Width    int
	Logger   *slog.Logger

	cursor int
}

var _ View = (*TimelineView)(nil)

// NewTimelineView creates a timeline with the default theme.
func NewTimelineView(statuses []mastodon.Status, cache *imgcache.Cache) *TimelineView {
	return &TimelineView{
		Statuses: statuses,
		Cache:    cache,
		Theme:    DefaultTheme(),
		Width:    defaultCardWidth,
	}
}

// Selected returns the status under the cursor, or nil when empty.
func (v *TimelineView) Selected() *mastodon.Status {
	if v.cursor < 0 || v.cursor >= len(v.Statuses) {
		return nil
	}
	return &v.Statuses[v.cursor]
}

// Init implements View.
func (v *TimelineView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *TimelineView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.Width = msg.Width
		return v, nil
	case tea.KeyMsg:
		selected := v.Selected()
		switch msg.String() {
		case "j", "down":
			if v.cursor < len(v.Statuses)-1 {
				v.cursor++
			}
		case "k", "up":
			if v.cursor > 0 {
				v.cursor--
			}
		case "g":
			v.cursor = 0
		case "G":
			if len(v.Statuses) > 0 {
				v.cursor = len(v.Statuses) - 1
			}
		case "enter":
			if selected != nil {
				return v, intent(ExpandStatusMsg{Status: selected.Display()})
			}
		case "o":
			if selected != nil {
				return v, intent(OpenProfileMsg{URL: selected.Display().Account.URL})
			}
		case "r":
			if selected != nil {
				return v, intent(ReplyMsg{ID: selected.Display().ID})
			}
		case "b":
			if selected != nil {
				return v, intent(BoostMsg{ID: selected.Display().ID})
			}
		case "f":
			if selected != nil {
				return v, intent(FavoriteMsg{ID: selected.Display().ID})
			}
		case "B":
			if selected != nil {
				return v, intent(BookmarkMsg{ID: selected.Display().ID})
			}
		}
	}
	return v, nil
}

// View implements View.
func (v *TimelineView) View() string {
	if len(v.Statuses) == 0 {
		return v.Theme.Caption.Render("(timeline is empty)")
	}

	snapshot := v.Cache.Snapshot()
	selectedTheme := v.Theme
	selectedTheme.Card = v.Theme.Card.BorderForeground(lipgloss.Color(ColorHighlight))

	cards := make([]string, len(v.Statuses))
	for i := range v.Statuses {
		status := &v.Statuses[i]
		th := v.Theme
		if i == v.cursor {
			th = selectedTheme
		}
		handles := HandlesFromStatus(status, snapshot)
		cards[i] = renderStatus(status, handles, th, v.width(), "", v.logger())
	}
	return strings.Join(cards, "\n")
}

func (v *TimelineView) width() int {
	if v.Width > 0 {
		return v.Width
	}
	return defaultCardWidth
}

func (v *TimelineView) logger() *slog.Logger {
	if v.Logger != nil {
		return v.Logger
	}
	return slog.Default()
}
