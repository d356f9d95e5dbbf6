package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopcrawl"
	"golang.org/x/net/html"
)

// Compile-time interface verification.
var _ shopcrawl.Extractor = (*TextExtractor)(nil)

// TextExtractor flattens HTML into plain text: script, style, and page-chrome
// elements are removed, then remaining text nodes are joined with one
// normalized line per block-level element.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// strippedSelector matches elements removed before flattening.
const strippedSelector = "script, style, nav, footer, header"

// blockElements start a new output line when entered or left.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"hr": true, "li": true, "main": true, "ol": true, "p": true,
	"pre": true, "section": true, "table": true, "td": true, "th": true,
	"tr": true, "ul": true,
}

// Text processes raw HTML and returns the flattened plain text.
func (e *TextExtractor) Text(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", shopcrawl.Errorf(shopcrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(strippedSelector).Remove()

	var b strings.Builder
	for _, n := range doc.Nodes {
		flatten(n, &b)
	}

	// Normalize: one trimmed, non-empty line per block.
	var lines []string
	for _, line := range strings.Split(b.String(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

// flatten walks the node tree appending text content, inserting line breaks
// around block-level elements.
func flatten(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
	case html.ElementNode:
		if blockElements[n.Data] {
			b.WriteByte('\n')
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		flatten(c, b)
	}

	if n.Type == html.ElementNode && blockElements[n.Data] {
		b.WriteByte('\n')
	}
}
