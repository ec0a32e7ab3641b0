package ui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fedideck/internal/imgcache"
	"fedideck/internal/mastodon"
	"fedideck/internal/richtext"
	"fedideck/internal/ui/textutil"
)

const defaultCardWidth = 80

// AccountView renders a profile card for one account. The card resolves
// header and avatar images against the live cache on every render;
// images that have not loaded yet are omitted entirely.
//
// Focus cycles over the username link and the custom fields; activating
// an element emits OpenMsg.
type AccountView struct {
	Account mastodon.Account
	Cache   *imgcache.Cache
	Theme   Theme
	Width   int
	Logger  *slog.Logger

	focus int // 0 = username link, 1..len(Fields) = custom fields
}

var _ View = (*AccountView)(nil)

// NewAccountView creates a profile card with the default theme.
func NewAccountView(account mastodon.Account, cache *imgcache.Cache) *AccountView {
	return &AccountView{
		Account: account,
		Cache:   cache,
		Theme:   DefaultTheme(),
		Width:   defaultCardWidth,
	}
}

// Init implements View.
func (v *AccountView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *AccountView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.Width = msg.Width
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "j", "down":
			if v.focus < len(v.Account.Fields) {
				v.focus++
			}
			return v, nil
		case "shift+tab", "k", "up":
			if v.focus > 0 {
				v.focus--
			}
			return v, nil
		case "enter":
			return v, v.activate()
		}
	}
	return v, nil
}

// activate translates the focused element into its intent message.
func (v *AccountView) activate() tea.Cmd {
	if v.focus == 0 {
		url := v.Account.URL
		return func() tea.Msg { return OpenMsg{URL: url} }
	}
	idx := v.focus - 1
	if idx >= len(v.Account.Fields) {
		return nil
	}
	target := fieldOpenTarget(v.Account.Fields[idx])
	return func() tea.Msg { return OpenMsg{URL: target} }
}

// fieldOpenTarget decides what a custom-field activation opens: the
// first hyperlink target in the raw value when one exists, otherwise
// the rendered text itself.
func fieldOpenTarget(field mastodon.Field) string {
	if href, ok := richtext.FirstLink(field.Value); ok {
		return href
	}
	return richtext.Strip(field.Value)
}

// View implements View.
func (v *AccountView) View() string {
	return renderAccount(v.Account, v.Cache.Snapshot(), v.Theme, v.width(), v.focus, v.logger())
}

func (v *AccountView) width() int {
	if v.Width > 0 {
		return v.Width
	}
	return defaultCardWidth
}

func (v *AccountView) logger() *slog.Logger {
	if v.Logger != nil {
		return v.Logger
	}
	return slog.Default()
}

// renderAccount builds the profile card. Pure for a fixed snapshot:
// two calls with identical inputs produce identical output.
func renderAccount(account mastodon.Account, snapshot map[string]imgcache.Handle, th Theme, width, focus int, logger *slog.Logger) string {
	var sections []string

	if header, ok := snapshot[account.Header]; ok {
		sections = append(sections, header.Block())
	}
	if avatar, ok := snapshot[account.Avatar]; ok {
		sections = append(sections, avatar.Block())
	}

	sections = append(sections, th.DisplayName.Render(account.DisplayName))

	username := "@" + account.Username
	if focus == 0 {
		sections = append(sections, th.Focused.Render("▸ "+username))
	} else {
		sections = append(sections, th.Link.Render(username))
	}

	if account.Note != "" {
		sections = append(sections, th.Body.Render(renderBody(account.Note, width, logger)))
	}

	if account.CreatedAt.IsZero() {
		logger.Warn("account has no join date, omitting joined line", "account", account.Acct)
	} else {
		joined := fmt.Sprintf("Joined on %s", account.CreatedAt.Format("2 Jan 2006"))
		sections = append(sections, th.Caption.Render(joined))
	}

	sections = append(sections, renderCounters(account, th, width))

	for i, field := range account.Fields {
		sections = append(sections, renderField(field, th, width, focus == i+1))
	}

	return strings.Join(sections, strings.Repeat("\n", th.SpaceXXS+1))
}

// renderBody converts an HTML fragment for display, degrading to
// tag-stripped literal text instead of failing the render.
func renderBody(fragment string, width int, logger *slog.Logger) string {
	wrapWidth := min(width-2, richtext.DefaultWidth)
	text, err := richtext.Render(fragment, wrapWidth)
	if err != nil {
		logger.Warn("rich text conversion failed, rendering stripped text", "error", err)
		return richtext.Strip(fragment)
	}
	return text
}

// renderCounters lays out followers/following/posts as an equal-width
// triptych with divider separators and centered text.
func renderCounters(account mastodon.Account, th Theme, width int) string {
	colWidth := max((width-2)/3, 12)
	column := func(label string, count int) string {
		return textutil.Center(label, colWidth) + "\n" +
			th.Counter.Render(textutil.Center(fmt.Sprintf("%d", count), colWidth))
	}
	divider := th.Divider.Render("│") + "\n" + th.Divider.Render("│")
	return lipgloss.JoinHorizontal(lipgloss.Top,
		column("Followers", account.FollowersCount),
		divider,
		column("Following", account.FollowingCount),
		divider,
		column("Posts", account.StatusesCount),
	)
}

// renderField renders one label/value pair; the label is capitalized
// for display and the value is itself an activation target.
func renderField(field mastodon.Field, th Theme, width int, focused bool) string {
	label := textutil.Capitalize(field.Name)
	value := richtext.Strip(field.Value)
	value = textutil.Truncate(value, max(width-4, 8))
	if focused {
		return th.Focused.Render("▸ "+label) + "\n  " + th.FieldValue.Render(value)
	}
	return th.FieldLabel.Render("  "+label) + "\n  " + th.FieldValue.Render(value)
}
