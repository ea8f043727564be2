package fetch

import (
	"context"
	"log/slog"
	"time"

	restylib "github.com/go-resty/resty/v2"
	rodlib "github.com/go-rod/rod"
	"github.com/websoup/websoup"
	"github.com/websoup/websoup/classify"
	wsquery "github.com/websoup/websoup/goquery"
	"github.com/websoup/websoup/rod"
	wsslog "github.com/websoup/websoup/slog"
)

// Default probe timeouts. Browser rendering is slower than a plain GET.
const (
	DefaultStaticTimeout  = 10 * time.Second
	DefaultBrowserTimeout = 20 * time.Second
)

// ProbeConfig describes a dynamic-page probe: two fetches of the same
// URL, one plain, one rendered. Zero values select the defaults.
type ProbeConfig struct {
	// URL to classify. Required, must be absolute.
	URL string

	// Headers are extra request headers applied to both fetches.
	Headers map[string]string

	// Threshold is the dynamic-page ratio cutoff.
	// Defaults to classify.DefaultThreshold (1.2).
	Threshold float64

	// StaticTimeout bounds the plain-HTTP fetch. Defaults to 10s.
	StaticTimeout time.Duration

	// BrowserTimeout bounds the browser fetch. Defaults to 20s.
	BrowserTimeout time.Duration

	// InsecureTLS disables certificate verification on the plain fetch.
	InsecureTLS bool

	// Client is an optional reusable HTTP session. Caller keeps ownership.
	Client *restylib.Client

	// Browser is an optional reusable browser. Caller keeps ownership.
	Browser *rodlib.Browser

	// Extractor, when set, measures main-content length instead of
	// whole-page text length.
	Extractor websoup.Extractor

	// Logger, when set, logs both fetches and the verdict.
	Logger *slog.Logger
}

// Classify fetches cfg.URL with both the plain-HTTP and the browser
// backend and compares visible-text lengths. Internally-created fetchers
// are released on every exit path; borrowed sessions are left open.
func Classify(ctx context.Context, cfg ProbeConfig) (*websoup.Classification, error) {
	staticTimeout := cfg.StaticTimeout
	if staticTimeout <= 0 {
		staticTimeout = DefaultStaticTimeout
	}
	browserTimeout := cfg.BrowserTimeout
	if browserTimeout <= 0 {
		browserTimeout = DefaultBrowserTimeout
	}

	static := instrument(newHTTPFetcher(Config{
		Timeout:     staticTimeout,
		Headers:     cfg.Headers,
		InsecureTLS: cfg.InsecureTLS,
		Client:      cfg.Client,
	}), cfg.Logger)
	defer static.Close()

	browserOpts := []rod.Option{
		rod.WithTimeout(browserTimeout),
		rod.WithHeaders(cfg.Headers),
	}
	if cfg.Browser != nil {
		browserOpts = append(browserOpts, rod.WithBrowser(cfg.Browser))
	}
	rodFetcher, err := rod.NewFetcher(browserOpts...)
	if err != nil {
		return nil, err
	}
	browser := instrument(rodFetcher, cfg.Logger)
	defer browser.Close()

	var classifier websoup.Classifier = &classify.Classifier{
		Static:    static,
		Browser:   browser,
		Parser:    wsquery.NewParser(),
		Extractor: cfg.Extractor,
		Threshold: cfg.Threshold,
	}
	if cfg.Logger != nil {
		classifier = wsslog.NewLoggingClassifier(classifier, cfg.Logger)
	}
	return classifier.Classify(ctx, cfg.URL)
}

// IsDynamic reports whether browser rendering materially changes the
// content at cfg.URL.
func IsDynamic(ctx context.Context, cfg ProbeConfig) (bool, error) {
	result, err := Classify(ctx, cfg)
	if err != nil {
		return false, err
	}
	return result.Dynamic, nil
}

// ChooseBackend probes cfg.URL and returns the backend a subsequent
// Soup call should use: BackendBrowser for dynamic pages, BackendHTTP
// otherwise.
func ChooseBackend(ctx context.Context, cfg ProbeConfig) (websoup.Backend, error) {
	result, err := Classify(ctx, cfg)
	if err != nil {
		return "", err
	}
	return result.Backend(), nil
}
