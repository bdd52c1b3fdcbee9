package infakt

import (
	"context"
	"io"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Fetcher performs one HTTP round trip. *http.Client satisfies it.
type Fetcher interface {
	Do(req *http.Request) (*http.Response, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(req *http.Request) (*http.Response, error)

// Do calls f(req).
func (f FetcherFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

// RequestInit carries optional request settings for the transport.
type RequestInit struct {
	Method string // defaults to GET
	Header http.Header
	Body   io.Reader
}

// transport binds requests to one base URL and API key.
type transport struct {
	baseURL string
	apiKey  string
	fetcher Fetcher
}

func (t *transport) url(path string) string { return t.baseURL + path }

// fetch builds the request for path and delegates it to the Fetcher. The API
// key header is set after the caller headers are copied.
func (t *transport) fetch(ctx context.Context, path string, init *RequestInit) (*http.Response, error) {
	method := http.MethodGet
	var body io.Reader
	if init != nil {
		if init.Method != "" {
			method = init.Method
		}
		body = init.Body
	}
	req, err := http.NewRequestWithContext(ctx, method, t.url(path), body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if init != nil {
		for k, vs := range init.Header {
			req.Header.Del(k)
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
	}
	req.Header.Set(APIKeyHeader, t.apiKey)
	return t.fetcher.Do(req)
}

// maxErrorBody bounds the body snippet kept in StatusError.
const maxErrorBody = 4 << 10

// HTTPFetcher is the default Fetcher. It rejects non-2xx responses with
// *StatusError and sets no timeout of its own.
type HTTPFetcher struct {
	client  *http.Client
	tracing []otelhttp.Option
	traced  bool
}

// HTTPFetcherOption configures an HTTPFetcher.
type HTTPFetcherOption func(*HTTPFetcher)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(c *http.Client) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// WithTracing wraps the client transport with OpenTelemetry instrumentation.
func WithTracing(opts ...otelhttp.Option) HTTPFetcherOption {
	return func(f *HTTPFetcher) {
		f.traced = true
		f.tracing = append(f.tracing, opts...)
	}
}

// NewHTTPFetcher returns the default Fetcher.
func NewHTTPFetcher(opts ...HTTPFetcherOption) *HTTPFetcher {
	f := &HTTPFetcher{client: &http.Client{}}
	for _, opt := range opts {
		opt(f)
	}
	if f.traced {
		c := *f.client
		base := c.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.Transport = otelhttp.NewTransport(base, f.tracing...)
		f.client = &c
	}
	return f
}

// Do sends req. Non-2xx responses are drained, closed, and returned as
// *StatusError.
func (f *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{
			Method:     req.Method,
			URL:        req.URL.String(),
			StatusCode: resp.StatusCode,
			Body:       string(b),
		}
	}
	return resp, nil
}
