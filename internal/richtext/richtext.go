// Package richtext converts the HTML fragments delivered by the API
// (bios, field values, status bodies) into plain terminal text. The
// conversion is lossy on purpose: markup is stripped, link targets and
// block structure survive as readable cues.
package richtext

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mattn/go-runewidth"
	xhtml "golang.org/x/net/html"
)

// DefaultWidth is the wrap policy applied to bios and status bodies.
const DefaultWidth = 700

// Render converts an HTML fragment to wrapped plain text. Anchors
// whose target differs from their text render as "text (target)",
// list items get a bullet, block elements are separated by blank
// lines. A parse failure is returned to the caller, who should fall
// back to Strip rather than fail the render.
func Render(fragment string, width int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var blocks []string
	doc.Find("body").Each(func(_ int, body *goquery.Selection) {
		for _, node := range body.Nodes {
			for child := node.FirstChild; child != nil; child = child.NextSibling {
				collectBlocks(child, &blocks)
			}
		}
	})

	var out []string
	for _, block := range blocks {
		block = strings.TrimSpace(collapseSpace(block))
		if block == "" {
			continue
		}
		out = append(out, wrap(block, width))
	}
	return strings.Join(out, "\n\n"), nil
}

// Strip is the total fallback: tags removed, entities decoded,
// whitespace collapsed. It never fails.
func Strip(fragment string) string {
	text := tagPattern.ReplaceAllString(fragment, " ")
	return strings.TrimSpace(collapseSpace(html.UnescapeString(text)))
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// FirstLink returns the target of the first anchor in the fragment.
func FirstLink(fragment string) (string, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", false
	}
	href, ok := doc.Find("a[href]").First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return "", false
	}
	return href, true
}

// collectBlocks walks one top-level node and appends finished text
// blocks. Block-level children start new blocks; inline content is
// accumulated via renderInline.
func collectBlocks(node *xhtml.Node, blocks *[]string) {
	if node.Type == xhtml.TextNode {
		*blocks = append(*blocks, node.Data)
		return
	}
	if node.Type != xhtml.ElementNode {
		return
	}
	switch node.Data {
	case "p", "div", "blockquote", "pre", "h1", "h2", "h3", "h4", "h5", "h6":
		var b strings.Builder
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			renderInline(child, &b)
		}
		*blocks = append(*blocks, b.String())
	case "ul", "ol":
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			if child.Type == xhtml.ElementNode && child.Data == "li" {
				var b strings.Builder
				b.WriteString("• ")
				for grand := child.FirstChild; grand != nil; grand = grand.NextSibling {
					renderInline(grand, &b)
				}
				*blocks = append(*blocks, b.String())
			}
		}
	default:
		// Inline element at the top level: its own block.
		var b strings.Builder
		renderInline(node, &b)
		*blocks = append(*blocks, b.String())
	}
}

func renderInline(node *xhtml.Node, b *strings.Builder) {
	switch node.Type {
	case xhtml.TextNode:
		b.WriteString(node.Data)
		return
	case xhtml.ElementNode:
	default:
		return
	}

	if node.Data == "br" {
		b.WriteString("\n")
		return
	}

	var inner strings.Builder
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		renderInline(child, &inner)
	}

	if node.Data == "a" {
		text := strings.TrimSpace(inner.String())
		href := attr(node, "href")
		switch {
		case text == "":
			b.WriteString(href)
		case href == "" || href == text:
			b.WriteString(text)
		default:
			fmt.Fprintf(b, "%s (%s)", text, href)
		}
		return
	}
	b.WriteString(inner.String())
}

func attr(node *xhtml.Node, name string) string {
	for _, a := range node.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// collapseSpace normalizes runs of spaces and tabs while keeping the
// newlines produced by <br>.
func collapseSpace(s string) string {
	var b strings.Builder
	space := false
	var last rune
	for _, r := range s {
		switch r {
		case ' ', '\t', '\r':
			space = true
		case '\n':
			b.WriteRune('\n')
			last = '\n'
			space = false
		default:
			if space && b.Len() > 0 && last != '\n' {
				b.WriteRune(' ')
			}
			space = false
			b.WriteRune(r)
			last = r
		}
	}
	return b.String()
}

// wrap performs a width-aware greedy word wrap. Words wider than the
// limit are emitted on their own line rather than broken.
func wrap(s string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	var lines []string
	for line := range strings.SplitSeq(s, "\n") {
		lines = append(lines, wrapLine(line, width)...)
	}
	return strings.Join(lines, "\n")
}

func wrapLine(line string, width int) []string {
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{""}
	}
	var out []string
	var cur strings.Builder
	curWidth := 0
	for _, word := range words {
		w := runewidth.StringWidth(word)
		if curWidth > 0 && curWidth+1+w > width {
			out = append(out, cur.String())
			cur.Reset()
			curWidth = 0
		}
		if curWidth > 0 {
			cur.WriteByte(' ')
			curWidth++
		}
		cur.WriteString(word)
		curWidth += w
	}
	out = append(out, cur.String())
	return out
}
