package ui

import "fedideck/internal/mastodon"

// Intent messages emitted by the cards. They are inert data: the host
// update loop alone decides what side effect, if any, each one causes.

// OpenMsg is sent when the user activates a link on the profile card
// (the username or a custom field).
type OpenMsg struct {
	URL string
}

// OpenProfileMsg is sent when the user activates an author name,
// avatar, or boost banner on a status card.
type OpenProfileMsg struct {
	URL string
}

// ExpandStatusMsg is sent when the user activates a status body to
// open its detail/thread view. It carries the displayed status.
type ExpandStatusMsg struct {
	Status *mastodon.Status
}

// ReplyMsg is sent when the user activates the reply control.
type ReplyMsg struct {
	ID string
}

// BoostMsg is sent when the user activates the boost control.
type BoostMsg struct {
	ID string
}

// FavoriteMsg is sent when the user activates the favorite control.
type FavoriteMsg struct {
	ID string
}

// BookmarkMsg is sent when the user activates the bookmark control.
type BookmarkMsg struct {
	ID string
}

// OpenLinkMsg is sent when the user activates a tag chip or a media
// attachment that carries a link URL.
type OpenLinkMsg struct {
	URL string
}
