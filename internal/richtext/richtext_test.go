package richtext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderParagraphs(t *testing.T) {
	out, err := Render("<p>first</p><p>second</p>", 80)
	require.NoError(t, err)
	assert.Equal(t, "first\n\nsecond", out)
}

func TestRenderAnchorKeepsTarget(t *testing.T) {
	out, err := Render(`<p>see <a href="https://x.example">x</a></p>`, 80)
	require.NoError(t, err)
	assert.Equal(t, "see x (https://x.example)", out)
}

func TestRenderAnchorSameTextCollapses(t *testing.T) {
	out, err := Render(`<p><a href="https://x.example">https://x.example</a></p>`, 80)
	require.NoError(t, err)
	assert.Equal(t, "https://x.example", out)
}

func TestRenderBreaksAndLists(t *testing.T) {
	out, err := Render("<p>a<br>b</p><ul><li>one</li><li>two</li></ul>", 80)
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n\n• one\n\n• two", out)
}

func TestRenderWrapsToWidth(t *testing.T) {
	out, err := Render("<p>alpha beta gamma delta</p>", 11)
	require.NoError(t, err)
	for line := range strings.SplitSeq(out, "\n") {
		assert.LessOrEqual(t, len(line), 11)
	}
	assert.Equal(t, "alpha beta\ngamma delta", out)
}

func TestRenderMalformedInputDegrades(t *testing.T) {
	// The parser is error-tolerant; unbalanced markup still renders.
	out, err := Render("<p>broken <b>bold", 80)
	require.NoError(t, err)
	assert.Equal(t, "broken bold", out)
}

func TestStripIsTotal(t *testing.T) {
	assert.Equal(t, "she/her", Strip("she/her"))
	assert.Equal(t, "x", Strip(`<a href="https://x.example">x</a>`))
	assert.Equal(t, "a < b", Strip("a &lt; b"))
	assert.Equal(t, "", Strip(""))
}

func TestFirstLink(t *testing.T) {
	href, ok := FirstLink(`<a href="https://x.example">x</a>`)
	require.True(t, ok)
	assert.Equal(t, "https://x.example", href)

	_, ok = FirstLink("she/her")
	assert.False(t, ok)

	_, ok = FirstLink(`<a href="">empty</a>`)
	assert.False(t, ok)
}
