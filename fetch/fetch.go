// Package fetch composes the retrieval backends and parsers into the
// one-call convenience layer: fetch a URL, get back a parsed document.
// It is stateless; every call builds (or borrows) what it needs and
// releases internally-created resources on every exit path.
package fetch

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	restylib "github.com/go-resty/resty/v2"
	rodlib "github.com/go-rod/rod"
	"github.com/websoup/websoup"
	wsetree "github.com/websoup/websoup/etree"
	wsquery "github.com/websoup/websoup/goquery"
	"github.com/websoup/websoup/resty"
	"github.com/websoup/websoup/rod"
	wsslog "github.com/websoup/websoup/slog"
)

// DefaultTimeout applies when Config.Timeout is zero.
const DefaultTimeout = 10 * time.Second

// Config describes a single fetch. The zero value of every optional
// field selects a sensible default: BackendHTTP, ParserHTML,
// DefaultTimeout, TLS verification on, no extra headers, no reused
// session. A Config is constructed per call and discarded.
type Config struct {
	// URL to fetch. Required, must be absolute.
	URL string

	// Backend selects the retrieval strategy.
	Backend websoup.Backend

	// Parser selects the document parser.
	Parser websoup.ParserName

	// Timeout bounds the whole retrieval, whichever backend runs it.
	Timeout time.Duration

	// Headers are extra request headers, keys case-insensitive per
	// HTTP semantics.
	Headers map[string]string

	// InsecureTLS disables certificate verification.
	InsecureTLS bool

	// Client is an optional reusable HTTP session for BackendHTTP and
	// BackendRendered. The caller keeps ownership and must not pass it
	// with BackendBrowser.
	Client *restylib.Client

	// Browser is an optional reusable browser for BackendBrowser and
	// BackendRendered. The caller keeps ownership and must not pass it
	// with BackendHTTP.
	Browser *rodlib.Browser

	// Logger, when set, logs every fetch with its URL, size and
	// duration.
	Logger *slog.Logger
}

// Soup retrieves the page described by cfg and parses it into a
// document. Exactly one backend strategy runs per call; an unrecognized
// backend fails with EUNSUPPORTED before any network I/O.
func Soup(ctx context.Context, cfg Config) (websoup.Document, error) {
	parser, err := newParser(cfg.Parser)
	if err != nil {
		return nil, err
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}

	var html string
	switch backend(cfg) {
	case websoup.BackendHTTP:
		html, err = fetchHTTP(ctx, cfg)
	case websoup.BackendRendered:
		html, err = fetchRendered(ctx, cfg)
	case websoup.BackendBrowser:
		html, err = fetchBrowser(ctx, cfg)
	default:
		return nil, websoup.Errorf(websoup.EUNSUPPORTED, "unsupported backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	return parser.Parse(html)
}

// FromText parses already-retrieved markup without any network I/O.
func FromText(markup string, name websoup.ParserName) (websoup.Document, error) {
	parser, err := newParser(name)
	if err != nil {
		return nil, err
	}
	return parser.Parse(markup)
}

// FormFromURL fetches the page described by cfg and harvests the fields
// of the first form matching query ("form" when query is empty). Hidden
// fields such as CSRF tokens are included, ready to be merged with
// user-supplied values and submitted.
func FormFromURL(ctx context.Context, cfg Config, query string) (*websoup.Form, error) {
	if query == "" {
		query = "form"
	}
	doc, err := Soup(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return websoup.ExtractForm(doc, query)
}

func backend(cfg Config) websoup.Backend {
	if cfg.Backend == "" {
		return websoup.BackendHTTP
	}
	return cfg.Backend
}

func timeout(cfg Config) time.Duration {
	if cfg.Timeout <= 0 {
		return DefaultTimeout
	}
	return cfg.Timeout
}

func validate(cfg Config) error {
	u, err := url.Parse(cfg.URL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return websoup.Errorf(websoup.EINVALID, "invalid URL %q", cfg.URL)
	}
	switch backend(cfg) {
	case websoup.BackendHTTP:
		if cfg.Browser != nil {
			return websoup.Errorf(websoup.EINVALID, "browser session is incompatible with the http backend")
		}
	case websoup.BackendBrowser:
		if cfg.Client != nil {
			return websoup.Errorf(websoup.EINVALID, "HTTP session is incompatible with the browser backend")
		}
	}
	return nil
}

func newParser(name websoup.ParserName) (websoup.Parser, error) {
	switch name {
	case websoup.ParserHTML, "":
		return wsquery.NewParser(), nil
	case websoup.ParserXML:
		return wsetree.NewParser(), nil
	default:
		return nil, websoup.Errorf(websoup.EUNSUPPORTED, "unsupported parser %q", name)
	}
}

// newHTTPFetcher builds the plain-HTTP fetcher for cfg, reusing the
// caller's session when one is supplied.
func newHTTPFetcher(cfg Config) *resty.Fetcher {
	opts := []resty.Option{
		resty.WithTimeout(timeout(cfg)),
		resty.WithHeaders(cfg.Headers),
	}
	if cfg.InsecureTLS {
		opts = append(opts, resty.WithInsecureTLS())
	}
	if cfg.Client != nil {
		opts = append(opts, resty.WithClient(cfg.Client))
	}
	return resty.NewFetcher(opts...)
}

// instrument wraps f with logging when a logger is configured.
func instrument(f websoup.Fetcher, logger *slog.Logger) websoup.Fetcher {
	if logger == nil {
		return f
	}
	return wsslog.NewLoggingFetcher(f, logger)
}

func fetchHTTP(ctx context.Context, cfg Config) (string, error) {
	fetcher := instrument(newHTTPFetcher(cfg), cfg.Logger)
	defer fetcher.Close()
	return fetcher.Fetch(ctx, cfg.URL)
}

// fetchRendered retrieves the page over HTTP, then executes its scripts
// in a browser page and returns the resulting DOM snapshot.
func fetchRendered(ctx context.Context, cfg Config) (string, error) {
	html, err := fetchHTTP(ctx, cfg)
	if err != nil {
		return "", err
	}

	opts := []rod.Option{rod.WithTimeout(timeout(cfg))}
	if cfg.Browser != nil {
		opts = append(opts, rod.WithBrowser(cfg.Browser))
	}
	renderer, err := rod.NewRenderer(opts...)
	if err != nil {
		return "", err
	}
	defer renderer.Close()

	return renderer.Render(ctx, html)
}

func fetchBrowser(ctx context.Context, cfg Config) (string, error) {
	opts := []rod.Option{
		rod.WithTimeout(timeout(cfg)),
		rod.WithHeaders(cfg.Headers),
	}
	if cfg.Browser != nil {
		opts = append(opts, rod.WithBrowser(cfg.Browser))
	}
	rodFetcher, err := rod.NewFetcher(opts...)
	if err != nil {
		return "", err
	}
	fetcher := instrument(rodFetcher, cfg.Logger)
	defer fetcher.Close()

	return fetcher.Fetch(ctx, cfg.URL)
}
