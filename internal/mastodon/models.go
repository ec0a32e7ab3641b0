// Package mastodon holds read-only snapshots of the Mastodon REST
// entities the views render. Field names and JSON tags follow the
// upstream API schema. Nothing here is fetched or mutated by this
// module; the host supplies fully populated records.
package mastodon

import "time"

// Field is one label/value pair from an account's profile metadata.
// Value is raw HTML as delivered by the API.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Account is a profile snapshot.
type Account struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Acct           string    `json:"acct"`
	DisplayName    string    `json:"display_name"`
	URL            string    `json:"url"`
	Avatar         string    `json:"avatar"`
	Header         string    `json:"header"`
	Note           string    `json:"note"` // bio, raw HTML
	CreatedAt      time.Time `json:"created_at"`
	FollowersCount int       `json:"followers_count"`
	FollowingCount int       `json:"following_count"`
	StatusesCount  int       `json:"statuses_count"`
	Fields         []Field   `json:"fields"`
}

// MediaAttachment is one media item on a status. PreviewURL keys the
// image-handle cache; URL is the optional full-resolution link.
type MediaAttachment struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	PreviewURL  string `json:"preview_url"`
	URL         string `json:"url,omitempty"`
	Description string `json:"description,omitempty"`
}

// Tag is a hashtag reference on a status.
type Tag struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Status is a post snapshot. Reblog is set when this status boosts
// another one; the boosted status carries the displayed content.
type Status struct {
	ID               string            `json:"id"`
	Account          Account           `json:"account"`
	Content          string            `json:"content"` // raw HTML
	CreatedAt        time.Time         `json:"created_at"`
	URL              string            `json:"url"`
	MediaAttachments []MediaAttachment `json:"media_attachments"`
	Tags             []Tag             `json:"tags"`
	Reblog           *Status           `json:"reblog,omitempty"`
	RepliesCount     int               `json:"replies_count"`
	ReblogsCount     int               `json:"reblogs_count"`
	FavouritesCount  int               `json:"favourites_count"`

	// Favourited is per-viewer and may be absent from the payload.
	Favourited *bool `json:"favourited,omitempty"`
}

// Display returns the status whose content is actually shown: the
// reblogged status when present, otherwise s itself.
func (s *Status) Display() *Status {
	if s.Reblog != nil {
		return s.Reblog
	}
	return s
}

// IsFavourited reports the per-viewer favourited flag, defaulting to
// false when the API omitted it.
func (s *Status) IsFavourited() bool {
	return s.Favourited != nil && *s.Favourited
}

// Notification types as delivered by the API.
const (
	NotificationFollow    = "follow"
	NotificationMention   = "mention"
	NotificationReblog    = "reblog"
	NotificationFavourite = "favourite"
)

// Notification wraps an actor account and, for mention/reblog/favourite
// notifications, the status it refers to.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Account   Account   `json:"account"`
	Status    *Status   `json:"status,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
