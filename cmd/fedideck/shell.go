package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"fedideck/internal/fixture"
	"fedideck/internal/imgcache"
	"fedideck/internal/mastodon"
	"fedideck/internal/opener"
	"fedideck/internal/telemetry"
	"fedideck/internal/ui"
)

type pane int

const (
	paneTimeline pane = iota
	paneProfile
	paneNotifications
	paneDetail // expanded single status
)

// loadTickMsg drives the simulated async image loader.
type loadTickMsg time.Time

// shell is the demo host: it owns all state, routes every intent
// message the cards emit, and simulates the async image loader the
// real application would run against the network.
type shell struct {
	pane      pane
	timeline  *ui.TimelineView
	profile   *ui.AccountView
	notices   []*ui.NotificationView
	noticeIdx int
	detail    *ui.StatusView

	cache   *imgcache.Cache
	pending []string // image URLs the fake loader has not delivered yet
	open    *opener.Opener
	tracer  *telemetry.Provider
	logger  *slog.Logger
	width   int

	keys keyMap
	help help.Model
}

func newShell(logger *slog.Logger, tracer *telemetry.Provider) *shell {
	cache := imgcache.New()
	timeline := fixture.Timeline()
	accounts := fixture.Accounts()

	s := &shell{
		pane:     paneTimeline,
		timeline: ui.NewTimelineView(timeline, cache),
		profile:  ui.NewAccountView(accounts[0], cache),
		cache:    cache,
		open:     opener.New(logger),
		tracer:   tracer,
		logger:   logger,
		width:    80,
		keys:     newKeyMap(),
		help:     newHelpModel(),
	}
	for _, n := range fixture.Notifications() {
		notification := n
		s.notices = append(s.notices, ui.NewNotificationView(&notification, cache))
	}
	s.pending = collectImageURLs(timeline, accounts)
	s.timeline.Logger = logger
	s.profile.Logger = logger
	return s
}

// collectImageURLs gathers every image URL the fixture data references,
// in a stable order, for the fake loader to deliver one by one.
func collectImageURLs(timeline []mastodon.Status, accounts []mastodon.Account) []string {
	seen := make(map[string]bool)
	var urls []string
	add := func(url string) {
		if url != "" && !seen[url] {
			seen[url] = true
			urls = append(urls, url)
		}
	}
	for _, a := range accounts {
		add(a.Avatar)
		add(a.Header)
	}
	for i := range timeline {
		for s := &timeline[i]; s != nil; s = s.Reblog {
			add(s.Account.Avatar)
			for _, m := range s.MediaAttachments {
				add(m.PreviewURL)
			}
		}
	}
	return urls
}

// Init implements tea.Model.
func (s *shell) Init() tea.Cmd {
	return loadTick()
}

func loadTick() tea.Cmd {
	return tea.Tick(400*time.Millisecond, func(t time.Time) tea.Msg {
		return loadTickMsg(t)
	})
}

// Update implements tea.Model.
func (s *shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.help.Width = msg.Width
		s.broadcast(msg)
		return s, nil

	case loadTickMsg:
		if len(s.pending) == 0 {
			return s, nil
		}
		url := s.pending[0]
		s.pending = s.pending[1:]
		s.cache.Put(url, fakeDecode(url))
		return s, loadTick()

	// Intent messages: the shell is the sole side-effect authority.
	case ui.OpenMsg:
		return s, s.openURL("open", msg.URL)
	case ui.OpenProfileMsg:
		return s, s.openURL("open_profile", msg.URL)
	case ui.OpenLinkMsg:
		return s, s.openURL("open_link", msg.URL)
	case ui.ExpandStatusMsg:
		_, end := s.tracer.Span(context.Background(), "intent.expand_status")
		end()
		s.detail = ui.NewStatusView(msg.Status, ui.HandlesFromStatus(msg.Status, s.cache.Snapshot()))
		s.detail.Logger = s.logger
		s.detail.Width = s.width
		s.pane = paneDetail
		return s, nil
	case ui.ReplyMsg:
		return s, s.action("reply", msg.ID)
	case ui.BoostMsg:
		return s, s.action("boost", msg.ID)
	case ui.FavoriteMsg:
		return s, s.action("favorite", msg.ID)
	case ui.BookmarkMsg:
		return s, s.action("bookmark", msg.ID)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return s, tea.Quit
		case "esc":
			if s.pane == paneDetail {
				s.pane = paneTimeline
				s.detail = nil
				return s, nil
			}
		case "1":
			s.pane = paneTimeline
			return s, nil
		case "2":
			s.pane = paneProfile
			return s, nil
		case "3":
			s.pane = paneNotifications
			return s, nil
		case "J":
			if s.pane == paneNotifications && s.noticeIdx < len(s.notices)-1 {
				s.noticeIdx++
				return s, nil
			}
		case "K":
			if s.pane == paneNotifications && s.noticeIdx > 0 {
				s.noticeIdx--
				return s, nil
			}
		}
		return s, s.delegate(msg)
	}
	return s, nil
}

// openURL traces the intent and hands the URL to the platform opener.
func (s *shell) openURL(kind, url string) tea.Cmd {
	_, end := s.tracer.Span(context.Background(), "intent."+kind)
	defer end()
	s.open.Open(url)
	return nil
}

// action handles the interaction intents the demo cannot perform
// (they need the network): traced and logged only.
func (s *shell) action(kind, id string) tea.Cmd {
	_, end := s.tracer.Span(context.Background(), "intent."+kind)
	defer end()
	s.logger.Info("interaction intent (no network in demo)", "kind", kind, "status_id", id)
	return nil
}

// delegate forwards a message to the active pane's view.
func (s *shell) delegate(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.pane {
	case paneTimeline:
		_, cmd = s.timeline.Update(msg)
	case paneProfile:
		_, cmd = s.profile.Update(msg)
	case paneNotifications:
		if s.noticeIdx < len(s.notices) {
			_, cmd = s.notices[s.noticeIdx].Update(msg)
		}
	case paneDetail:
		if s.detail != nil {
			_, cmd = s.detail.Update(msg)
		}
	}
	return cmd
}

func (s *shell) broadcast(msg tea.WindowSizeMsg) {
	s.timeline.Update(msg)
	s.profile.Update(msg)
	for _, n := range s.notices {
		n.Update(msg)
	}
	if s.detail != nil {
		s.detail.Update(msg)
	}
}

// View implements tea.Model.
func (s *shell) View() string {
	var body string
	switch s.pane {
	case paneTimeline:
		body = s.timeline.View()
	case paneProfile:
		body = s.profile.View()
	case paneNotifications:
		var cards []string
		for i, n := range s.notices {
			card := n.View()
			if i == s.noticeIdx {
				card = "▸ " + card
			}
			cards = append(cards, card)
		}
		body = strings.Join(cards, "\n\n")
	case paneDetail:
		if s.detail != nil {
			body = s.detail.View()
		}
	}

	return "fedideck\n\n" + body + "\n" + s.help.View(s.keys)
}

// fakeDecode stands in for the real image pipeline: it produces a
// deterministic block the size a decoded preview would occupy.
func fakeDecode(url string) imgcache.Handle {
	cols, rows := 6, 3
	if strings.Contains(url, "header") {
		cols, rows = 40, 2
	}
	if strings.Contains(url, "-small") {
		cols, rows = 12, 4
	}
	line := strings.Repeat("▒", cols)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	return imgcache.NewHandle(strings.Join(lines, "\n"), cols, rows)
}
