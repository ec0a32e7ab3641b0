package mastodon

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusDisplay(t *testing.T) {
	inner := &Status{ID: "2", Content: "<p>original</p>"}
	outer := &Status{ID: "1", Reblog: inner}

	assert.Same(t, inner, outer.Display())

	plain := &Status{ID: "3"}
	assert.Same(t, plain, plain.Display())
}

func TestIsFavouritedDefaultsFalse(t *testing.T) {
	s := &Status{}
	assert.False(t, s.IsFavourited(), "missing flag must default to false")

	yes := true
	s.Favourited = &yes
	assert.True(t, s.IsFavourited())
}

func TestStatusUnmarshalOmitsFavourited(t *testing.T) {
	// Public timeline payloads carry no per-viewer flags at all.
	payload := `{
		"id": "114",
		"content": "<p>hi</p>",
		"favourites_count": 5,
		"account": {"id": "9", "username": "mona", "fields": [
			{"name": "website", "value": "<a href=\"https://x.example\">x</a>"}
		]}
	}`

	var s Status
	require.NoError(t, json.Unmarshal([]byte(payload), &s))
	assert.Nil(t, s.Favourited)
	assert.Equal(t, 5, s.FavouritesCount)
	require.Len(t, s.Account.Fields, 1)
	assert.Equal(t, "website", s.Account.Fields[0].Name)
}
