// Package textutil provides unicode-aware text helpers for card
// rendering: visual widths, ellipsis truncation, padding and
// centering in terminal columns.
package textutil

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Ellipsis is appended when a string is truncated.
const Ellipsis = "…"

// VisualWidth returns the number of terminal columns s occupies.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// VisualWidthStyled returns the column width of a styled string,
// skipping ANSI escape sequences.
func VisualWidthStyled(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens s to at most maxWidth columns, appending the
// ellipsis when anything was cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if VisualWidth(s) <= maxWidth {
		return s
	}
	budget := maxWidth - VisualWidth(Ellipsis)
	if budget < 0 {
		return Ellipsis
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if used+w > budget {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + Ellipsis
}

// PadRight pads s with spaces to targetWidth columns, truncating when
// it is already wider.
func PadRight(s string, targetWidth int) string {
	cur := VisualWidth(s)
	if cur >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return s + strings.Repeat(" ", targetWidth-cur)
}

// Center centers s within targetWidth columns. Wider strings are
// truncated.
func Center(s string, targetWidth int) string {
	cur := VisualWidth(s)
	if cur >= targetWidth {
		return Truncate(s, targetWidth)
	}
	left := (targetWidth - cur) / 2
	right := targetWidth - cur - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// Capitalize upper-cases the first rune of s, for field labels.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
