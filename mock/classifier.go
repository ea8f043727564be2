package mock

import (
	"context"

	"github.com/websoup/websoup"
)

var _ websoup.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of websoup.Classifier.
type Classifier struct {
	ClassifyFn func(ctx context.Context, url string) (*websoup.Classification, error)
}

func (c *Classifier) Classify(ctx context.Context, url string) (*websoup.Classification, error) {
	return c.ClassifyFn(ctx, url)
}
