package ui

import (
	"maps"

	"fedideck/internal/imgcache"
	"fedideck/internal/mastodon"
)

// Image footprints in terminal cells.
const (
	avatarCols = 6
	avatarRows = 3
	bannerCols = 2
	bannerRows = 1
	mediaCols  = 12
	mediaRows  = 4
)

// StatusHandles is a per-render snapshot of exactly the image handles
// one status or notification card needs. It is rebuilt from the live
// cache on every render and never stored across renders.
//
// Primary always holds the outer author's avatar (the booster when the
// status is a reblog, the actor for a notification); Secondary holds
// the reblogged or embedded status's author when one exists. Views
// should not read the positional fields directly: the role accessors
// below encapsulate which slot belongs on the card.
type StatusHandles struct {
	Primary   imgcache.Handle // zero when not yet cached
	Secondary imgcache.Handle // zero when absent or not yet cached
	Media     map[string]imgcache.Handle
}

// HandlesFromStatus resolves every handle a status card needs. Total:
// uncached avatars stay zero, uncached media fall back to the
// placeholder, and every attachment's preview URL keys Media.
func HandlesFromStatus(status *mastodon.Status, snapshot map[string]imgcache.Handle) StatusHandles {
	h := StatusHandles{
		Primary: snapshot[status.Account.Avatar],
		Media:   make(map[string]imgcache.Handle),
	}
	if status.Reblog != nil {
		h.Secondary = snapshot[status.Reblog.Account.Avatar]
	}
	for _, media := range status.Display().MediaAttachments {
		if cached, ok := snapshot[media.PreviewURL]; ok {
			h.Media[media.PreviewURL] = cached
		} else {
			h.Media[media.PreviewURL] = imgcache.Placeholder(mediaCols, mediaRows)
		}
	}
	return h
}

// HandlesFromNotification resolves handles for a notification card:
// the actor's avatar, plus the embedded status's author avatar and
// media when the notification carries one.
func HandlesFromNotification(n *mastodon.Notification, snapshot map[string]imgcache.Handle) StatusHandles {
	h := StatusHandles{
		Primary: snapshot[n.Account.Avatar],
		Media:   make(map[string]imgcache.Handle),
	}
	if n.Status == nil {
		return h
	}
	h.Secondary = snapshot[n.Status.Account.Avatar]
	for _, media := range n.Status.MediaAttachments {
		if cached, ok := snapshot[media.PreviewURL]; ok {
			h.Media[media.PreviewURL] = cached
		} else {
			h.Media[media.PreviewURL] = imgcache.Placeholder(mediaCols, mediaRows)
		}
	}
	return h
}

// Equal reports whether two snapshots resolve to the same handles, so
// a host can skip re-rendering an unchanged card.
func (h StatusHandles) Equal(other StatusHandles) bool {
	return h.Primary == other.Primary &&
		h.Secondary == other.Secondary &&
		maps.Equal(h.Media, other.Media)
}

// DisplayedAuthorAvatar returns the handle for the card's main avatar:
// the reblogged author when the status is a reblog, else the author.
// Falls back to the placeholder while the image is in flight.
func (h StatusHandles) DisplayedAuthorAvatar(isReblog bool) imgcache.Handle {
	slot := h.Primary
	if isReblog {
		slot = h.Secondary
	}
	if slot.IsZero() {
		return imgcache.Placeholder(avatarCols, avatarRows)
	}
	return slot
}

// BoostBannerAvatar returns the handle for the boost banner: always
// the outer (boosting) author. Falls back to a small placeholder.
func (h StatusHandles) BoostBannerAvatar() imgcache.Handle {
	if h.Primary.IsZero() {
		return imgcache.Placeholder(bannerCols, bannerRows)
	}
	return h.Primary
}
