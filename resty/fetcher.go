// Package resty provides the plain-HTTP implementation of websoup.Fetcher.
// It issues a single GET request without executing any scripts and is
// suitable for static pages.
package resty

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/websoup/websoup"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
// Kept consistent with the classifier's plain-HTTP probe timeout (10s).
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements websoup.Fetcher at compile time.
var _ websoup.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page content from URLs using HTTP GET requests.
// Unlike rod.Fetcher, this does not execute JavaScript.
type Fetcher struct {
	client   *resty.Client
	owned    bool
	timeout  time.Duration
	headers  map[string]string
	insecure bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests. It bounds each Fetch
// call whether the session is owned or caller-supplied.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithHeaders sets extra request headers sent with every fetch.
func WithHeaders(headers map[string]string) Option {
	return func(f *Fetcher) {
		f.headers = headers
	}
}

// WithInsecureTLS disables TLS certificate verification.
// Ignored when the Fetcher uses a caller-supplied client.
func WithInsecureTLS() Option {
	return func(f *Fetcher) {
		f.insecure = true
	}
}

// WithClient makes the Fetcher issue requests on a caller-supplied session
// instead of creating its own. The caller keeps ownership: Close will not
// release the client and its TLS configuration is left alone. The
// configured timeout still bounds each Fetch call.
func WithClient(client *resty.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP Fetcher. Unless WithClient is used, the
// Fetcher creates and owns its session.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		client := resty.New()
		client.SetHeader("User-Agent", websoup.DefaultUserAgent)
		if f.insecure {
			client.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
		}
		f.client = client
		f.owned = true
	}

	return f
}

// Fetch issues a GET request and returns the response body. The URL is
// validated before any network I/O. A non-2xx response yields an ESTATUS
// error carrying the exact status code.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return "", websoup.Errorf(websoup.EINVALID, "invalid URL %q", rawURL)
	}

	// The timeout bounds the call via the context rather than the
	// client, so caller-supplied sessions are bounded without being
	// mutated.
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req := f.client.R().SetContext(ctx)
	for k, v := range f.headers {
		req.SetHeader(k, v)
	}

	resp, err := req.Get(rawURL)
	if err != nil {
		return "", classifyTransportError(err, rawURL)
	}

	if !resp.IsSuccess() {
		return "", websoup.StatusErrorf(resp.StatusCode(), "HTTP %d for %s", resp.StatusCode(), rawURL)
	}

	return resp.String(), nil
}

// Close releases idle connections held by an owned session. A
// caller-supplied client is left untouched and remains usable.
func (f *Fetcher) Close() error {
	if f.owned {
		f.client.GetClient().CloseIdleConnections()
	}
	return nil
}

// classifyTransportError maps transport-level failures onto the error
// taxonomy: certificate problems, deadline expiry, and everything else
// (DNS, refused connections, resets).
func classifyTransportError(err error, rawURL string) error {
	var certErr *tls.CertificateVerificationError
	var hostErr x509.HostnameError
	var authErr x509.UnknownAuthorityError
	if errors.As(err, &certErr) || errors.As(err, &hostErr) || errors.As(err, &authErr) {
		return websoup.Errorf(websoup.ETLS, "TLS verification failed for %s: %v", rawURL, err)
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return websoup.Errorf(websoup.ETIMEOUT, "fetching %s: %v", rawURL, err)
	}

	return websoup.Errorf(websoup.EUNAVAILABLE, "connection to %s failed: %v", rawURL, err)
}
