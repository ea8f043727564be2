package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/websoup/websoup"
)

// DefaultStableWindow is how long the DOM must stay unchanged before a
// render is considered complete.
const DefaultStableWindow = 300 * time.Millisecond

// Renderer executes the scripts embedded in already-fetched HTML and
// returns the resulting DOM snapshot. It is the render step of the
// rendered backend: the page body is retrieved over plain HTTP first,
// then loaded into a browser page for script execution.
type Renderer struct {
	browser  *rod.Browser
	launcher *launcher.Launcher // nil when the browser is borrowed
	timeout  time.Duration
	closed   atomic.Bool
}

// NewRenderer creates a new Renderer. Unless WithBrowser is used, a
// headless Chrome browser is launched and owned by the Renderer; Close
// must be called when it is no longer needed.
func NewRenderer(opts ...Option) (*Renderer, error) {
	o := &options{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(o)
	}

	r := &Renderer{
		browser: o.browser,
		timeout: o.timeout,
	}

	if r.browser == nil {
		browser, lnchr, err := launchBrowser()
		if err != nil {
			return nil, websoup.Errorf(websoup.ERENDER, "%v", err)
		}
		r.browser = browser
		r.launcher = lnchr
	}

	return r, nil
}

// Render loads html into a fresh page, waits for the DOM to stabilize
// after script execution, and returns the rendered markup.
func (r *Renderer) Render(ctx context.Context, html string) (string, error) {
	if r.closed.Load() {
		return "", websoup.Errorf(websoup.EINVALID, "renderer is closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", renderError(err, "opening render page")
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.SetDocumentContent(html); err != nil {
		return "", renderError(err, "loading document")
	}

	if err := page.WaitStable(DefaultStableWindow); err != nil {
		return "", renderError(err, "waiting for scripts to settle")
	}

	rendered, err := page.HTML()
	if err != nil {
		return "", renderError(err, "reading rendered content")
	}

	return rendered, nil
}

// Close releases browser resources. A borrowed browser is left running.
// Close is safe to call multiple times.
func (r *Renderer) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	if r.launcher == nil {
		return nil
	}
	err := r.browser.Close()
	r.launcher.Kill()
	return err
}
