package rod

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/websoup/websoup"
)

// DefaultFetchTimeout is the default timeout for browser navigation.
// Rendering is slower than a plain GET, so it is double the plain-HTTP
// default. All timeouts are time.Duration regardless of backend.
const DefaultFetchTimeout = 20 * time.Second

// Ensure Fetcher implements websoup.Fetcher at compile time.
var _ websoup.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser  *rod.Browser
	launcher *launcher.Launcher // nil when the browser is borrowed
	timeout  time.Duration
	headers  map[string]string
	closed   atomic.Bool
}

// Option configures a Fetcher or a Renderer.
type Option func(*options)

type options struct {
	browser *rod.Browser
	timeout time.Duration
	headers map[string]string
}

// WithTimeout sets the navigation timeout.
// Defaults to DefaultFetchTimeout (20s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		o.timeout = d
	}
}

// WithHeaders sets extra HTTP headers applied to every page.
func WithHeaders(headers map[string]string) Option {
	return func(o *options) {
		o.headers = headers
	}
}

// WithBrowser makes the Fetcher use a caller-supplied browser instead of
// launching its own. The caller keeps ownership: Close will not close a
// borrowed browser.
func WithBrowser(b *rod.Browser) Option {
	return func(o *options) {
		o.browser = b
	}
}

// NewFetcher creates a new Fetcher. Unless WithBrowser is used, a headless
// Chrome browser is launched and owned by the Fetcher; Close must be
// called when it is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	o := &options{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(o)
	}

	f := &Fetcher{
		browser: o.browser,
		timeout: o.timeout,
		headers: o.headers,
	}

	if f.browser == nil {
		browser, lnchr, err := launchBrowser()
		if err != nil {
			return nil, websoup.Errorf(websoup.ERENDER, "%v", err)
		}
		f.browser = browser
		f.launcher = lnchr
	}

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", websoup.Errorf(websoup.EINVALID, "fetcher is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", renderError(err, "opening page for %s", url)
	}
	defer page.Close()

	page = page.Context(ctx)

	if len(f.headers) > 0 {
		if _, err := page.SetExtraHeaders(headerPairs(f.headers)); err != nil {
			return "", renderError(err, "setting headers for %s", url)
		}
	}

	if err := page.Navigate(url); err != nil {
		return "", renderError(err, "navigating to %s", url)
	}

	if err := page.WaitLoad(); err != nil {
		return "", renderError(err, "waiting for %s to load", url)
	}

	html, err := page.HTML()
	if err != nil {
		return "", renderError(err, "reading content of %s", url)
	}

	return html, nil
}

// Close releases browser resources. A borrowed browser is left running.
// Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	if f.launcher == nil {
		return nil
	}
	err := f.browser.Close()
	f.launcher.Kill()
	return err
}

// renderError maps browser failures onto the error taxonomy: deadline
// expiry becomes ETIMEOUT, cancellation propagates unchanged, everything
// else is a render failure.
func renderError(err error, format string, args ...any) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return websoup.Errorf(websoup.ETIMEOUT, format+": %v", append(args, err)...)
	}
	return websoup.Errorf(websoup.ERENDER, format+": %v", append(args, err)...)
}
