package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fedideck/internal/imgcache"
	"fedideck/internal/mastodon"
)

func statusWithReblog() *mastodon.Status {
	return &mastodon.Status{
		ID:      "outer",
		Account: mastodon.Account{Avatar: "https://files.example/booster.png"},
		Reblog: &mastodon.Status{
			ID:      "inner",
			Account: mastodon.Account{Avatar: "https://files.example/author.png"},
			MediaAttachments: []mastodon.MediaAttachment{
				{PreviewURL: "https://files.example/m1-preview.png", URL: "https://files.example/m1.png"},
				{PreviewURL: "https://files.example/m2-preview.png"},
			},
		},
	}
}

func TestHandlesFromStatusAssignsSlots(t *testing.T) {
	booster := imgcache.NewHandle("B", 1, 1)
	author := imgcache.NewHandle("A", 1, 1)
	snapshot := map[string]imgcache.Handle{
		"https://files.example/booster.png": booster,
		"https://files.example/author.png":  author,
	}

	h := HandlesFromStatus(statusWithReblog(), snapshot)
	assert.Equal(t, booster, h.Primary, "primary is always the outer author")
	assert.Equal(t, author, h.Secondary, "secondary is the reblogged author")
}

func TestHandlesFromStatusNoReblog(t *testing.T) {
	s := &mastodon.Status{Account: mastodon.Account{Avatar: "https://files.example/a.png"}}
	h := HandlesFromStatus(s, map[string]imgcache.Handle{})
	assert.True(t, h.Primary.IsZero())
	assert.True(t, h.Secondary.IsZero())
	assert.Empty(t, h.Media)
}

func TestHandlesFromStatusMediaIsTotal(t *testing.T) {
	real := imgcache.NewHandle("IMG", 3, 1)
	snapshot := map[string]imgcache.Handle{
		"https://files.example/m1-preview.png": real,
	}

	h := HandlesFromStatus(statusWithReblog(), snapshot)
	require.Len(t, h.Media, 2, "every media preview URL must key the mapping")
	assert.Equal(t, real, h.Media["https://files.example/m1-preview.png"])

	fallback := h.Media["https://files.example/m2-preview.png"]
	assert.True(t, fallback.IsPlaceholder(), "uncached media falls back to the placeholder")
}

func TestHandlesFromNotification(t *testing.T) {
	actor := imgcache.NewHandle("ACT", 3, 1)
	author := imgcache.NewHandle("AUT", 3, 1)
	n := &mastodon.Notification{
		Type:    mastodon.NotificationFavourite,
		Account: mastodon.Account{Avatar: "https://files.example/actor.png"},
		Status: &mastodon.Status{
			Account: mastodon.Account{Avatar: "https://files.example/author.png"},
			MediaAttachments: []mastodon.MediaAttachment{
				{PreviewURL: "https://files.example/p.png"},
			},
		},
	}
	snapshot := map[string]imgcache.Handle{
		"https://files.example/actor.png":  actor,
		"https://files.example/author.png": author,
	}

	h := HandlesFromNotification(n, snapshot)
	assert.Equal(t, actor, h.Primary)
	assert.Equal(t, author, h.Secondary)
	require.Contains(t, h.Media, "https://files.example/p.png")
	assert.True(t, h.Media["https://files.example/p.png"].IsPlaceholder())
}

func TestHandlesFromNotificationWithoutStatus(t *testing.T) {
	n := &mastodon.Notification{
		Type:    mastodon.NotificationFollow,
		Account: mastodon.Account{Avatar: "https://files.example/actor.png"},
	}
	h := HandlesFromNotification(n, map[string]imgcache.Handle{})
	assert.True(t, h.Primary.IsZero())
	assert.True(t, h.Secondary.IsZero())
	assert.Empty(t, h.Media)
}

func TestHandlesTotalForAnyCacheCombination(t *testing.T) {
	s := statusWithReblog()
	urls := []string{
		"https://files.example/booster.png",
		"https://files.example/author.png",
		"https://files.example/m1-preview.png",
		"https://files.example/m2-preview.png",
	}
	// Every subset of cached URLs must produce a complete mapping.
	for mask := 0; mask < 1<<len(urls); mask++ {
		snapshot := map[string]imgcache.Handle{}
		for i, url := range urls {
			if mask&(1<<i) != 0 {
				snapshot[url] = imgcache.NewHandle(url, 1, 1)
			}
		}
		h := HandlesFromStatus(s, snapshot)
		require.Len(t, h.Media, 2, "mask %b", mask)
		for _, media := range s.Display().MediaAttachments {
			require.Contains(t, h.Media, media.PreviewURL, "mask %b", mask)
		}
	}
}

func TestStatusHandlesEqual(t *testing.T) {
	a := imgcache.NewHandle("A", 1, 1)
	h1 := StatusHandles{Primary: a, Media: map[string]imgcache.Handle{"u": a}}
	h2 := StatusHandles{Primary: a, Media: map[string]imgcache.Handle{"u": a}}
	h3 := StatusHandles{Primary: a, Media: map[string]imgcache.Handle{"u": imgcache.Placeholder(1, 1)}}

	assert.True(t, h1.Equal(h2))
	assert.False(t, h1.Equal(h3))
	assert.False(t, h1.Equal(StatusHandles{Media: map[string]imgcache.Handle{"u": a}}))
}

func TestRoleAccessorsInvertForReblogs(t *testing.T) {
	booster := imgcache.NewHandle("BOOSTER", 6, 3)
	author := imgcache.NewHandle("AUTHOR", 6, 3)
	h := StatusHandles{Primary: booster, Secondary: author}

	assert.Equal(t, author, h.DisplayedAuthorAvatar(true), "reblog: card avatar is the reblogged author")
	assert.Equal(t, booster, h.BoostBannerAvatar(), "banner avatar is the booster")
	assert.Equal(t, booster, h.DisplayedAuthorAvatar(false), "no reblog: card avatar is the author")
}

func TestRoleAccessorsFallBackToPlaceholder(t *testing.T) {
	h := StatusHandles{}
	assert.True(t, h.DisplayedAuthorAvatar(false).IsPlaceholder())
	assert.True(t, h.DisplayedAuthorAvatar(true).IsPlaceholder())
	assert.True(t, h.BoostBannerAvatar().IsPlaceholder())
}
