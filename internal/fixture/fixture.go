// Package fixture provides deterministic offline sample data for the
// demo shell and tests. IDs are random UUIDs; everything else is
// stable so renders are reproducible.
package fixture

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"fedideck/internal/mastodon"
)

var epoch = time.Date(2025, time.June, 14, 9, 30, 0, 0, time.UTC)

// Accounts returns a small cast of sample profiles.
func Accounts() []mastodon.Account {
	return []mastodon.Account{
		{
			ID:             uuid.NewString(),
			Username:       "mona",
			Acct:           "mona@social.example",
			DisplayName:    "Mona Lisa",
			URL:            "https://social.example/@mona",
			Avatar:         "https://files.example/mona-avatar.png",
			Header:         "https://files.example/mona-header.png",
			Note:           `<p>Portrait sitter, part-time enigma. More at <a href="https://louvre.example">the gallery</a>.</p>`,
			CreatedAt:      epoch.AddDate(-3, 0, 0),
			FollowersCount: 15034,
			FollowingCount: 12,
			StatusesCount:  204,
			Fields: []mastodon.Field{
				{Name: "website", Value: `<a href="https://louvre.example">louvre.example</a>`},
				{Name: "pronouns", Value: "she/her"},
			},
		},
		{
			ID:             uuid.NewString(),
			Username:       "vincent",
			Acct:           "vincent@social.example",
			DisplayName:    "Vincent",
			URL:            "https://social.example/@vincent",
			Avatar:         "https://files.example/vincent-avatar.png",
			CreatedAt:      epoch.AddDate(-1, -2, 0),
			FollowersCount: 87,
			FollowingCount: 240,
			StatusesCount:  1311,
		},
	}
}

// Timeline returns a sample home timeline: a plain post with media and
// tags, a boost, and a favourited reply.
func Timeline() []mastodon.Status {
	accounts := Accounts()
	mona, vincent := accounts[0], accounts[1]

	sunflowers := mastodon.Status{
		ID:        uuid.NewString(),
		Account:   vincent,
		Content:   `<p>New series up. Yellow, mostly. <a href="https://social.example/media/sunflowers">full resolution</a></p>`,
		CreatedAt: epoch.Add(-2 * time.Hour),
		URL:       "https://social.example/@vincent/1",
		MediaAttachments: []mastodon.MediaAttachment{
			{
				ID:          uuid.NewString(),
				Type:        "image",
				PreviewURL:  "https://files.example/sunflowers-small.png",
				URL:         "https://files.example/sunflowers.png",
				Description: "a vase of sunflowers",
			},
			{
				ID:         uuid.NewString(),
				Type:       "image",
				PreviewURL: "https://files.example/wheatfield-small.png",
			},
		},
		Tags: []mastodon.Tag{
			{Name: "art", URL: "https://social.example/tags/art"},
			{Name: "painting", URL: "https://social.example/tags/painting"},
		},
		RepliesCount:    4,
		ReblogsCount:    19,
		FavouritesCount: 77,
	}

	favourited := true
	museumDay := mastodon.Status{
		ID:              uuid.NewString(),
		Account:         mona,
		Content:         "<p>A fine day at the museum. The visitors keep smiling back.</p>",
		CreatedAt:       epoch.Add(-45 * time.Minute),
		URL:             "https://social.example/@mona/2",
		RepliesCount:    12,
		ReblogsCount:    3,
		FavouritesCount: 5,
		Favourited:      &favourited,
	}

	boost := mastodon.Status{
		ID:        uuid.NewString(),
		Account:   mona,
		CreatedAt: epoch.Add(-10 * time.Minute),
		URL:       fmt.Sprintf("https://social.example/@mona/%s", uuid.NewString()),
		Reblog:    &sunflowers,
	}

	return []mastodon.Status{museumDay, boost, sunflowers}
}

// Notifications returns sample notifications referencing the timeline.
func Notifications() []mastodon.Notification {
	accounts := Accounts()
	timeline := Timeline()
	return []mastodon.Notification{
		{
			ID:        uuid.NewString(),
			Type:      mastodon.NotificationFavourite,
			Account:   accounts[1],
			Status:    &timeline[0],
			CreatedAt: epoch.Add(-5 * time.Minute),
		},
		{
			ID:        uuid.NewString(),
			Type:      mastodon.NotificationFollow,
			Account:   accounts[1],
			CreatedAt: epoch.Add(-2 * time.Minute),
		},
	}
}
