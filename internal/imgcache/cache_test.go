package imgcache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMissingIsNotAnError(t *testing.T) {
	c := New()
	h, ok := c.Get("https://files.example/avatar.png")
	assert.False(t, ok)
	assert.True(t, h.IsZero())
}

func TestPutThenGet(t *testing.T) {
	c := New()
	h := NewHandle("██\n██", 2, 2)
	c.Put("https://files.example/a.png", h)

	got, ok := c.Get("https://files.example/a.png")
	require.True(t, ok)
	assert.Equal(t, h, got)
	assert.False(t, got.IsPlaceholder())
}

func TestSnapshotIsIsolatedFromLaterPuts(t *testing.T) {
	c := New()
	c.Put("a", NewHandle("x", 1, 1))

	snap := c.Snapshot()
	c.Put("b", NewHandle("y", 1, 1))

	assert.Len(t, snap, 1)
	assert.Equal(t, 2, c.Len())
}

func TestPlaceholderDeterministic(t *testing.T) {
	a := Placeholder(4, 2)
	b := Placeholder(4, 2)
	assert.Equal(t, a, b)
	assert.True(t, a.IsPlaceholder())
	assert.Equal(t, "░░░░\n░░░░", a.Block())

	// Degenerate footprints clamp instead of producing empty art.
	tiny := Placeholder(0, 0)
	assert.Equal(t, "░", tiny.Block())
}

func TestConcurrentPutGet(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			url := fmt.Sprintf("https://files.example/%d.png", i)
			c.Put(url, Placeholder(1, 1))
			c.Get(url)
			c.Snapshot()
		}()
	}
	wg.Wait()
	assert.Equal(t, 16, c.Len())
}
