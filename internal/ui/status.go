package ui

import (
	"fmt"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"fedideck/internal/mastodon"
)

// statusElement identifies one activatable element on a status card.
type statusElement struct {
	kind  string // "banner", "author", "body", "tag", "media", "reply", "boost", "favorite", "bookmark"
	index int    // tag or media index
}

// StatusView renders a post card: optional boost banner, author line,
// rich-text body, tag chips, media strip, and the action row. Handles
// are resolved by the host (or TimelineView) before each render via
// HandlesFromStatus/HandlesFromNotification.
type StatusView struct {
	Status  *mastodon.Status
	Handles StatusHandles
	Theme   Theme
	Width   int
	Logger  *slog.Logger

	focus int // index into elements()
}

var _ View = (*StatusView)(nil)

// NewStatusView creates a post card with the default theme.
func NewStatusView(status *mastodon.Status, handles StatusHandles) *StatusView {
	return &StatusView{
		Status:  status,
		Handles: handles,
		Theme:   DefaultTheme(),
		Width:   defaultCardWidth,
	}
}

// elements lists the card's activatable elements in focus order. Media
// attachments appear only when they rendered (real handle) and carry a
// link URL; a linkless attachment has no affordance at all.
func (v *StatusView) elements() []statusElement {
	var els []statusElement
	if v.Status.Reblog != nil {
		els = append(els, statusElement{kind: "banner"})
	}
	els = append(els, statusElement{kind: "author"}, statusElement{kind: "body"})
	display := v.Status.Display()
	for i := range display.Tags {
		els = append(els, statusElement{kind: "tag", index: i})
	}
	for i, media := range display.MediaAttachments {
		handle, ok := v.Handles.Media[media.PreviewURL]
		if ok && !handle.IsPlaceholder() && media.URL != "" {
			els = append(els, statusElement{kind: "media", index: i})
		}
	}
	els = append(els,
		statusElement{kind: "reply"},
		statusElement{kind: "boost"},
		statusElement{kind: "favorite"},
		statusElement{kind: "bookmark"},
	)
	return els
}

// Init implements View.
func (v *StatusView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *StatusView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.Width = msg.Width
		return v, nil
	case tea.KeyMsg:
		display := v.Status.Display()
		switch msg.String() {
		case "tab", "j", "down":
			if v.focus < len(v.elements())-1 {
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
		case "r":
			return v, intent(ReplyMsg{ID: display.ID})
		case "b":
			return v, intent(BoostMsg{ID: display.ID})
		case "f":
			return v, intent(FavoriteMsg{ID: display.ID})
		case "B":
			return v, intent(BookmarkMsg{ID: display.ID})
		}
	}
	return v, nil
}

// intent wraps an inert message into the command that delivers it to
// the host update loop.
func intent(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// activate translates the focused element into its intent message.
func (v *StatusView) activate() tea.Cmd {
	els := v.elements()
	if v.focus >= len(els) {
		return nil
	}
	display := v.Status.Display()
	switch el := els[v.focus]; el.kind {
	case "banner":
		// The banner names the booster: the outer account.
		return intent(OpenProfileMsg{URL: v.Status.Account.URL})
	case "author":
		return intent(OpenProfileMsg{URL: display.Account.URL})
	case "body":
		return intent(ExpandStatusMsg{Status: display})
	case "tag":
		return intent(OpenLinkMsg{URL: display.Tags[el.index].URL})
	case "media":
		return intent(OpenLinkMsg{URL: display.MediaAttachments[el.index].URL})
	case "reply":
		return intent(ReplyMsg{ID: display.ID})
	case "boost":
		return intent(BoostMsg{ID: display.ID})
	case "favorite":
		return intent(FavoriteMsg{ID: display.ID})
	case "bookmark":
		return intent(BookmarkMsg{ID: display.ID})
	}
	return nil
}

// View implements View.
func (v *StatusView) View() string {
	focused := ""
	els := v.elements()
	if v.focus < len(els) {
		focused = focusKey(els[v.focus])
	}
	return renderStatus(v.Status, v.Handles, v.Theme, v.width(), focused, v.logger())
}

func (v *StatusView) width() int {
	if v.Width > 0 {
		return v.Width
	}
	return defaultCardWidth
}

func (v *StatusView) logger() *slog.Logger {
	if v.Logger != nil {
		return v.Logger
	}
	return slog.Default()
}

// focusKey flattens an element into the focus identifier renderStatus
// understands ("tag:2", "media:0", "favorite", ...).
func focusKey(el statusElement) string {
	switch el.kind {
	case "tag", "media":
		return fmt.Sprintf("%s:%d", el.kind, el.index)
	default:
		return el.kind
	}
}

// renderStatus builds the post card. Pure for fixed inputs. The
// displayed author and content come from the reblogged status when one
// is present; the banner then names the booster.
func renderStatus(status *mastodon.Status, handles StatusHandles, th Theme, width int, focused string, logger *slog.Logger) string {
	var sections []string
	display := status.Display()

	if status.Reblog != nil {
		sections = append(sections, renderBoostBanner(status, handles, th, focused == "banner"))
	}

	sections = append(sections, renderStatusBody(display, status.Reblog != nil, handles, th, width, focused, logger))

	if len(display.Tags) > 0 {
		sections = append(sections, renderTags(display.Tags, th, focused))
	}

	if strip := renderMediaStrip(display, handles, th, width, focused); strip != "" {
		sections = append(sections, strip)
	}

	sections = append(sections, renderActions(display, th, focused))

	card := strings.Join(sections, "\n")
	return th.Card.Width(width).Render(card)
}

func renderBoostBanner(status *mastodon.Status, handles StatusHandles, th Theme, focused bool) string {
	text := fmt.Sprintf("%s boosted", status.Account.DisplayName)
	style := th.Caption
	if focused {
		style = th.Focused
		text = "▸ " + text
	}
	avatar := handles.BoostBannerAvatar()
	firstLine, _, _ := strings.Cut(avatar.Block(), "\n")
	return lipgloss.JoinHorizontal(lipgloss.Center, firstLine, " ", style.Render(text))
}

func renderStatusBody(display *mastodon.Status, isReblog bool, handles StatusHandles, th Theme, width int, focused string, logger *slog.Logger) string {
	author := fmt.Sprintf("%s @%s", display.Account.DisplayName, display.Account.Username)
	authorStyle := th.Link
	if focused == "author" {
		authorStyle = th.Focused
		author = "▸ " + author
	}

	body := renderBody(display.Content, width-avatarCols-3, logger)
	bodyStyle := th.Body
	if focused == "body" {
		bodyStyle = th.Focused
	}

	avatar := handles.DisplayedAuthorAvatar(isReblog)
	column := authorStyle.Render(author) + "\n" + bodyStyle.Render(body)
	return lipgloss.JoinHorizontal(lipgloss.Top, avatar.Block(), " ", column)
}

func renderTags(tags []mastodon.Tag, th Theme, focused string) string {
	chips := make([]string, len(tags))
	for i, tag := range tags {
		chip := "#" + tag.Name
		if focused == fmt.Sprintf("tag:%d", i) {
			chips[i] = th.Focused.Render("▸ " + chip)
		} else {
			chips[i] = th.Chip.Render(chip)
		}
	}
	return strings.Join(chips, "  ")
}

// renderMediaStrip renders the horizontal strip of attachments whose
// preview resolved to a real handle; still-loading (placeholder)
// entries are omitted entirely. Returns "" when nothing renders.
func renderMediaStrip(display *mastodon.Status, handles StatusHandles, th Theme, width int, focused string) string {
	var blocks []string
	caption := ""
	for i, media := range display.MediaAttachments {
		handle, ok := handles.Media[media.PreviewURL]
		if !ok || handle.IsPlaceholder() {
			continue
		}
		if focused == fmt.Sprintf("media:%d", i) {
			caption = th.Focused.Render("▸ " + mediaLabel(media))
		}
		if len(blocks) > 0 {
			blocks = append(blocks, " ")
		}
		blocks = append(blocks, handle.Block())
	}
	if len(blocks) == 0 {
		return ""
	}
	strip := lipgloss.NewStyle().MaxWidth(width - 2).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, blocks...))
	if caption != "" {
		strip += "\n" + caption
	}
	return strip
}

func mediaLabel(media mastodon.MediaAttachment) string {
	if media.Description != "" {
		return media.Description
	}
	return media.URL
}

// renderActions renders the four-control action row. The favorite
// control takes the active style when the viewer has favourited the
// displayed status; a missing flag counts as not favourited.
func renderActions(display *mastodon.Status, th Theme, focused string) string {
	control := func(key, glyph, label string, active bool) string {
		text := glyph
		if label != "" {
			text += " " + label
		}
		style := th.Action
		if active {
			style = th.ActionOn
		}
		if focused == key {
			style = th.Focused
			text = "▸ " + text
		}
		return style.Render(text)
	}
	return strings.Join([]string{
		control("reply", "↩", fmt.Sprintf("%d", display.RepliesCount), false),
		control("boost", "⇄", fmt.Sprintf("%d", display.ReblogsCount), false),
		control("favorite", "★", fmt.Sprintf("%d", display.FavouritesCount), display.IsFavourited()),
		control("bookmark", "⚑", "", false),
	}, "   ")
}
