package mock

import "github.com/websoup/websoup"

var _ websoup.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of websoup.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*websoup.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*websoup.ExtractResult, error) {
	return e.ExtractFn(html)
}
