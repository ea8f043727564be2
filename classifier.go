package websoup

import "context"

// Classification is the result of comparing a plain-HTTP fetch of a URL
// against a headless-browser fetch of the same URL.
type Classification struct {
	// Dynamic reports whether browser rendering materially changes the
	// page content, i.e. Ratio exceeded the configured threshold.
	Dynamic bool

	// StaticTextLen is the visible-text length of the plain-HTTP fetch.
	StaticTextLen int

	// RenderedTextLen is the visible-text length of the browser fetch.
	RenderedTextLen int

	// Ratio is (RenderedTextLen+1)/(StaticTextLen+1). The +1 smoothing
	// keeps empty pages from dividing by zero.
	Ratio float64
}

// Backend returns the backend recommended by the classification.
func (c *Classification) Backend() Backend {
	if c.Dynamic {
		return BackendBrowser
	}
	return BackendHTTP
}

// Classifier decides whether a page needs browser rendering.
type Classifier interface {
	// Classify fetches url with both the plain-HTTP and the browser
	// backend and compares the results. Errors from either fetch
	// propagate unchanged; there is no partial classification.
	Classify(ctx context.Context, url string) (*Classification, error)
}
