package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// DefaultMaxWords bounds extracted article text.
const DefaultMaxWords = 1000

// FromHTML extracts the readable body of a page: it drops script, style,
// nav, footer, and header subtrees, joins the text of the remaining
// paragraph elements, collapses whitespace runs, and truncates to maxWords.
// A maxWords of zero applies DefaultMaxWords.
func FromHTML(input []byte, maxWords int) string {
	if maxWords <= 0 {
		maxWords = DefaultMaxWords
	}
	node, err := html.Parse(bytes.NewReader(input))
	if err != nil || node == nil {
		return ""
	}

	var parts []string
	collectParagraphs(node, &parts)
	text := collapseSpaces(strings.Join(parts, " "))

	words := strings.Fields(text)
	if len(words) > maxWords {
		words = words[:maxWords]
	}
	return strings.Join(words, " ")
}

func collectParagraphs(n *html.Node, out *[]string) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "footer", "header":
			return
		case "p":
			var b strings.Builder
			collectText(&b, n)
			if t := strings.TrimSpace(b.String()); t != "" {
				*out = append(*out, t)
			}
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectParagraphs(c, out)
	}
}

func collectText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript":
			return
		case "br":
			b.WriteString(" ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(b, c)
	}
}

func collapseSpaces(s string) string {
	var b strings.Builder
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}
