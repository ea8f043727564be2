// Package rate provides a politeness decorator that throttles an
// underlying fetcher with a token bucket per host.
package rate

import (
	"context"
	"net/url"
	"sync"

	"github.com/websoup/websoup"
	"golang.org/x/time/rate"
)

var _ websoup.Fetcher = (*Fetcher)(nil)

// Fetcher wraps another fetcher and enforces a requests-per-second limit
// per host. Each host gets its own limiter with a burst of 1, so
// concurrent fetches of different hosts proceed independently while
// repeated fetches of the same host are spaced out.
type Fetcher struct {
	next websoup.Fetcher
	rps  float64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewFetcher decorates next with a per-host rate limit of rps requests
// per second.
func NewFetcher(next websoup.Fetcher, rps float64) *Fetcher {
	return &Fetcher{
		next:     next,
		rps:      rps,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Fetch waits for the host's rate limit before delegating. The wait is
// canceled when ctx is.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", websoup.Errorf(websoup.EINVALID, "invalid URL %q", rawURL)
	}

	if err := f.limiter(u.Host).Wait(ctx); err != nil {
		return "", err
	}

	return f.next.Fetch(ctx, rawURL)
}

// Close closes the underlying fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}

func (f *Fetcher) limiter(host string) *rate.Limiter {
	f.mu.Lock()
	defer f.mu.Unlock()

	l, ok := f.limiters[host]
	if !ok {
		l = rate.NewLimiter(rate.Limit(f.rps), 1)
		f.limiters[host] = l
	}
	return l
}
