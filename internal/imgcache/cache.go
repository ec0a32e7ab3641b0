// Package imgcache maps remote image URLs to decoded, renderable
// image handles. The host's loader fills the cache asynchronously;
// views read it without blocking. A missing entry is a normal
// transient state while a fetch is in flight, never an error.
package imgcache

import (
	"strings"
	"sync"
)

// Handle is an opaque reference to an image already rendered to
// terminal cells. Handles are produced by the host's decode pipeline;
// this package never decodes anything itself. The zero Handle is
// empty and reports IsZero.
type Handle struct {
	block       string
	cols, rows  int
	placeholder bool
}

// NewHandle wraps a pre-rendered cell block. cols and rows describe
// the block's footprint in terminal cells.
func NewHandle(block string, cols, rows int) Handle {
	return Handle{block: block, cols: cols, rows: rows}
}

// Placeholder returns the well-known fallback handle for an image that
// has not been loaded yet. Deterministic for a given footprint.
func Placeholder(cols, rows int) Handle {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	line := strings.Repeat("░", cols)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = line
	}
	return Handle{
		block:       strings.Join(lines, "\n"),
		cols:        cols,
		rows:        rows,
		placeholder: true,
	}
}

// Block returns the rendered cell block.
func (h Handle) Block() string { return h.block }

// Cols returns the handle's width in terminal cells.
func (h Handle) Cols() int { return h.cols }

// Rows returns the handle's height in terminal cells.
func (h Handle) Rows() int { return h.rows }

// IsPlaceholder reports whether h is a fallback handle rather than a
// real decoded image.
func (h Handle) IsPlaceholder() bool { return h.placeholder }

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h == Handle{} }

// Cache is a concurrency-safe URL→Handle map. Put may be called from
// the host's loader goroutines at any time; Get never blocks on a
// fetch in flight.
type Cache struct {
	mu      sync.RWMutex
	handles map[string]Handle
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{handles: make(map[string]Handle)}
}

// Put stores the handle for url, replacing any previous entry.
func (c *Cache) Put(url string, h Handle) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handles[url] = h
}

// Get looks up the handle for url. The second result is false while
// the image has not been loaded yet.
func (c *Cache) Get(url string) (Handle, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.handles[url]
	return h, ok
}

// Snapshot copies the current contents for one render pass, so a
// single render sees a consistent view even while the loader keeps
// writing.
func (c *Cache) Snapshot() map[string]Handle {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make(map[string]Handle, len(c.handles))
	for url, h := range c.handles {
		out[url] = h
	}
	return out
}

// Len returns the number of cached handles.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.handles)
}
