package ui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fedideck/internal/imgcache"
	"fedideck/internal/mastodon"
)

// NotificationView renders one notification: an actor line, plus the
// embedded status card when the notification refers to a post. The
// actor's avatar sits in the primary handle slot; the embedded card is
// given a remapped snapshot so its author avatar comes from the
// secondary slot.
type NotificationView struct {
	Notification *mastodon.Notification
	Cache        *imgcache.Cache
	Theme        Theme
	Width        int
	Logger       *slog.Logger

	card *StatusView // nil for notifications without a status
}

var _ View = (*NotificationView)(nil)

// NewNotificationView creates a notification card with the default theme.
func NewNotificationView(n *mastodon.Notification, cache *imgcache.Cache) *NotificationView {
	v := &NotificationView{
		Notification: n,
		Cache:        cache,
		Theme:        DefaultTheme(),
		Width:        defaultCardWidth,
	}
	if n.Status != nil {
		v.card = NewStatusView(n.Status, StatusHandles{})
	}
	return v
}

// Init implements View.
func (v *NotificationView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *NotificationView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.Width = msg.Width
		if v.card != nil {
			v.card.Width = msg.Width - 2
		}
		return v, nil
	case tea.KeyMsg:
		if msg.String() == "o" {
			url := v.Notification.Account.URL
			return v, intent(OpenProfileMsg{URL: url})
		}
		if v.card != nil {
			v.syncCard()
			_, cmd := v.card.Update(msg)
			return v, cmd
		}
	}
	return v, nil
}

// View implements View.
func (v *NotificationView) View() string {
	handles := HandlesFromNotification(v.Notification, v.Cache.Snapshot())

	actor := fmt.Sprintf("%s %s", v.Notification.Account.DisplayName, notificationVerb(v.Notification.Type))
	avatar := handles.BoostBannerAvatar()
	firstLine, _, _ := strings.Cut(avatar.Block(), "\n")
	line := lipgloss.JoinHorizontal(lipgloss.Center, firstLine, " ", v.Theme.Caption.Render(actor))

	if v.card == nil {
		return line
	}
	v.syncCard()
	return line + "\n" + v.card.View()
}

// syncCard refreshes the embedded card's handles from the live cache,
// moving the embedded author's avatar into the slot a plain status
// card reads it from.
func (v *NotificationView) syncCard() {
	handles := HandlesFromNotification(v.Notification, v.Cache.Snapshot())
	v.card.Handles = StatusHandles{
		Primary: handles.Secondary,
		Media:   handles.Media,
	}
	v.card.Theme = v.Theme
	v.card.Logger = v.Logger
	if v.card.Width == defaultCardWidth && v.Width != defaultCardWidth {
		v.card.Width = v.Width - 2
	}
}

func notificationVerb(kind string) string {
	switch kind {
	case mastodon.NotificationReblog:
		return "boosted your post"
	case mastodon.NotificationFavourite:
		return "favourited your post"
	case mastodon.NotificationMention:
		return "mentioned you"
	case mastodon.NotificationFollow:
		return "followed you"
	default:
		return kind
	}
}
