package rod

import (
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/websoup/websoup"
)

// DefaultMaxPages is the default number of pages before browser recycling.
const DefaultMaxPages = 75

// Manager owns a long-lived browser for callers that reuse one browser
// session across many fetches (pass Manager.Browser via WithBrowser).
// Chrome accumulates memory over time even with proper page cleanup, so
// the browser is recycled after a number of pages have been processed.
//
// Manager is safe for concurrent use.
type Manager struct {
	mu        sync.Mutex
	browser   *rod.Browser
	launcher  *launcher.Launcher
	pageCount int64
	maxPages  int64
	closed    atomic.Bool
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithMaxPages sets the number of pages after which the browser is
// recycled. Defaults to DefaultMaxPages.
func WithMaxPages(n int64) ManagerOption {
	return func(m *Manager) {
		m.maxPages = n
	}
}

// NewManager launches a headless Chrome browser and returns a Manager
// that owns it. Close must be called when the Manager is no longer needed.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{maxPages: DefaultMaxPages}
	for _, opt := range opts {
		opt(m)
	}

	browser, lnchr, err := launchBrowser()
	if err != nil {
		return nil, websoup.Errorf(websoup.ERENDER, "%v", err)
	}
	m.browser = browser
	m.launcher = lnchr

	return m, nil
}

// Browser returns the current browser instance, recycling it first if the
// page count has reached the threshold. Callers should call PageDone after
// each page they process through the returned browser.
func (m *Manager) Browser() *rod.Browser {
	m.mu.Lock()
	defer m.mu.Unlock()

	if atomic.LoadInt64(&m.pageCount) >= m.maxPages {
		m.recycle()
	}

	return m.browser
}

// PageDone records that one page has been processed, advancing toward the
// recycling threshold.
func (m *Manager) PageDone() {
	atomic.AddInt64(&m.pageCount, 1)
}

// Close shuts down the browser. Close is safe to call multiple times.
func (m *Manager) Close() error {
	if !m.closed.CompareAndSwap(false, true) {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.browser.Close()
	m.launcher.Kill()
	return err
}

// recycle replaces the browser with a fresh instance. The old browser is
// kept if the new launch fails. Must be called with mu held.
func (m *Manager) recycle() {
	browser, lnchr, err := launchBrowser()
	if err != nil {
		return
	}

	_ = m.browser.Close()
	m.launcher.Kill()

	m.browser = browser
	m.launcher = lnchr
	atomic.StoreInt64(&m.pageCount, 0)
}

// LauncherPID returns the process ID of the browser launcher. It exists
// for tests to verify cleanup.
func (m *Manager) LauncherPID() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.launcher == nil {
		return 0
	}
	return m.launcher.PID()
}
