// Package trafilatura wraps go-trafilatura to extract main content from
// HTML pages, removing boilerplate.
package trafilatura

import (
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/websoup/websoup"
)

// Ensure Extractor implements websoup.Extractor at compile time.
var _ websoup.Extractor = (*Extractor)(nil)

// Extractor extracts main content from HTML. Plugging it into the
// classifier makes the static-vs-rendered comparison ignore navigation
// chrome and other boilerplate.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as plain text.
func (e *Extractor) Extract(rawHTML string) (*websoup.ExtractResult, error) {
	if rawHTML == "" {
		return nil, websoup.Errorf(websoup.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, websoup.Errorf(websoup.EINTERNAL, "extracting content: %v", err)
	}

	return &websoup.ExtractResult{
		Title:       result.Metadata.Title,
		ContentText: result.ContentText,
	}, nil
}
