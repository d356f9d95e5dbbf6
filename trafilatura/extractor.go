// Package trafilatura implements a shopcrawl.Extractor using the
// go-trafilatura content extraction library. It serves as a fallback for
// pages where structural text flattening produces noisy or empty output,
// trading speed for boilerplate removal quality.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/shopcrawl"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements shopcrawl.Extractor at compile time.
var _ shopcrawl.Extractor = (*Extractor)(nil)

// Extractor extracts the main textual content from HTML, discarding
// navigation, ads, and other boilerplate.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Text extracts the main content of rawHTML as plain text.
func (e *Extractor) Text(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", shopcrawl.Errorf(shopcrawl.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", shopcrawl.Errorf(shopcrawl.EINVALID, "extracting content: %v", err)
	}

	var parts []string
	if title := strings.TrimSpace(result.Metadata.Title); title != "" {
		parts = append(parts, title)
	}
	if text := strings.TrimSpace(result.ContentText); text != "" {
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n"), nil
}
