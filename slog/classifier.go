package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/websoup/websoup"
)

// Ensure LoggingClassifier implements websoup.Classifier.
var _ websoup.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with structured logging of every
// probe and its verdict.
type LoggingClassifier struct {
	next   websoup.Classifier
	logger *slog.Logger
}

// NewLoggingClassifier creates a new LoggingClassifier.
func NewLoggingClassifier(next websoup.Classifier, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger}
}

// Classify delegates to the wrapped classifier and logs the verdict.
func (c *LoggingClassifier) Classify(ctx context.Context, url string) (result *websoup.Classification, err error) {
	defer func(begin time.Time) {
		if err != nil {
			c.logger.Error("classify",
				"url", url,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		c.logger.Info("classify",
			"url", url,
			"dynamic", result.Dynamic,
			"ratio", result.Ratio,
			"static_len", result.StaticTextLen,
			"rendered_len", result.RenderedTextLen,
			"duration", time.Since(begin),
		)
	}(time.Now())

	return c.next.Classify(ctx, url)
}
