package websoup

import "context"

// DefaultUserAgent is sent with every request unless the caller overrides
// the User-Agent header. Some sites serve degraded or empty pages to
// clients that don't look like a browser.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_10_1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/39.0.2171.95 Safari/537.36"

// Backend identifies a page-retrieval strategy.
type Backend string

// Supported retrieval backends.
const (
	// BackendHTTP issues a plain GET request. No scripts are executed.
	BackendHTTP Backend = "http"

	// BackendRendered issues a GET request on a script-capable session
	// and runs a render step over the response before parsing, so that
	// embedded scripts can mutate the DOM.
	BackendRendered Backend = "rendered"

	// BackendBrowser navigates a headless browser to the URL and reads
	// the fully rendered page.
	BackendBrowser Backend = "browser"
)

// ParseBackend converts an externally supplied selector string into a
// Backend. Returns EUNSUPPORTED for anything outside the known set.
// Internal dispatch switches exhaustively over the constants; this
// function exists only for configuration coming from the outside world.
func ParseBackend(s string) (Backend, error) {
	switch Backend(s) {
	case BackendHTTP, BackendRendered, BackendBrowser:
		return Backend(s), nil
	default:
		return "", Errorf(EUNSUPPORTED, "unsupported backend %q", s)
	}
}

// Fetcher retrieves page content from URLs as raw or rendered HTML.
// Implementations may use browser automation to handle JavaScript-rendered
// content.
type Fetcher interface {
	// Fetch retrieves the content at url. The context controls timeout
	// and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources the Fetcher created itself. A Fetcher
	// never closes a session or browser handle supplied by the caller.
	Close() error
}
