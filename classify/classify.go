// Package classify decides whether a page needs browser rendering by
// comparing a plain-HTTP fetch against a headless-browser fetch of the
// same URL. Text-length delta is a coarse routing heuristic, not a
// general content diff.
package classify

import (
	"context"

	"github.com/cespare/xxhash/v2"
	"github.com/websoup/websoup"
	"golang.org/x/sync/errgroup"
)

// Default probe parameters.
const (
	// DefaultThreshold is the ratio above which a page is classified
	// as dynamic.
	DefaultThreshold = 1.2
)

// Ensure Classifier implements websoup.Classifier at compile time.
var _ websoup.Classifier = (*Classifier)(nil)

// Classifier compares two fetches of a URL and classifies the page as
// static or dynamic. Every call re-fetches both variants; nothing is
// memoized.
type Classifier struct {
	// Static fetches the page without executing scripts. Required.
	Static websoup.Fetcher

	// Browser fetches the page with full rendering. Required.
	Browser websoup.Fetcher

	// Parser measures visible-text length. Required.
	Parser websoup.Parser

	// Extractor, when set, measures main-content length instead of
	// whole-page text length so boilerplate doesn't skew the ratio.
	// On extraction failure the whole-page measure is used.
	Extractor websoup.Extractor

	// Threshold is the dynamic-page ratio cutoff.
	// Defaults to DefaultThreshold.
	Threshold float64
}

// Classify fetches url with both backends and compares visible-text
// lengths. The two fetches run concurrently; there is no ordering
// requirement between them. A failure in either fetch aborts the
// classification and propagates unchanged.
func (c *Classifier) Classify(ctx context.Context, url string) (*websoup.Classification, error) {
	if c.Static == nil || c.Browser == nil || c.Parser == nil {
		return nil, websoup.Errorf(websoup.EINVALID, "classifier requires static fetcher, browser fetcher, and parser")
	}

	threshold := c.Threshold
	if threshold == 0 {
		threshold = DefaultThreshold
	}

	var staticHTML, renderedHTML string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		staticHTML, err = c.Static.Fetch(gctx, url)
		return err
	})
	g.Go(func() (err error) {
		renderedHTML, err = c.Browser.Fetch(gctx, url)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var staticLen, renderedLen int
	if xxhash.Sum64String(staticHTML) == xxhash.Sum64String(renderedHTML) {
		// Identical payloads: rendering changed nothing, measure once.
		n, err := c.textLength(staticHTML)
		if err != nil {
			return nil, err
		}
		staticLen, renderedLen = n, n
	} else {
		var err error
		staticLen, renderedLen, err = c.measure(staticHTML, renderedHTML)
		if err != nil {
			return nil, err
		}
	}

	// +1 smoothing keeps empty pages from dividing by zero.
	ratio := float64(renderedLen+1) / float64(staticLen+1)

	return &websoup.Classification{
		Dynamic:         ratio > threshold,
		StaticTextLen:   staticLen,
		RenderedTextLen: renderedLen,
		Ratio:           ratio,
	}, nil
}

// IsDynamic reports whether browser rendering materially changes the
// content at url.
func (c *Classifier) IsDynamic(ctx context.Context, url string) (bool, error) {
	result, err := c.Classify(ctx, url)
	if err != nil {
		return false, err
	}
	return result.Dynamic, nil
}

// ChooseBackend returns the backend recommended for url: BackendBrowser
// for dynamic pages, BackendHTTP otherwise.
func (c *Classifier) ChooseBackend(ctx context.Context, url string) (websoup.Backend, error) {
	result, err := c.Classify(ctx, url)
	if err != nil {
		return "", err
	}
	return result.Backend(), nil
}

// measure returns the text lengths of both payloads using one measure
// for both sides: extracted main content when the Extractor handles both
// payloads, whole-page visible text otherwise. A ratio built from a
// mix of the two would not be comparable against the threshold.
func (c *Classifier) measure(staticHTML, renderedHTML string) (int, int, error) {
	if c.Extractor != nil {
		staticRes, staticErr := c.Extractor.Extract(staticHTML)
		renderedRes, renderedErr := c.Extractor.Extract(renderedHTML)
		if staticErr == nil && renderedErr == nil {
			return len(staticRes.ContentText), len(renderedRes.ContentText), nil
		}
	}

	staticLen, err := c.pageTextLength(staticHTML)
	if err != nil {
		return 0, 0, err
	}
	renderedLen, err := c.pageTextLength(renderedHTML)
	if err != nil {
		return 0, 0, err
	}
	return staticLen, renderedLen, nil
}

func (c *Classifier) textLength(html string) (int, error) {
	if c.Extractor != nil {
		if result, err := c.Extractor.Extract(html); err == nil {
			return len(result.ContentText), nil
		}
	}
	return c.pageTextLength(html)
}

func (c *Classifier) pageTextLength(html string) (int, error) {
	doc, err := c.Parser.Parse(html)
	if err != nil {
		return 0, err
	}
	return doc.TextLength(), nil
}
