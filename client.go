package infakt

import (
	"context"
	"net/url"
	"strconv"

	"github.com/reoring/infakt/model"
	"github.com/reoring/infakt/schema"
)

const (
	opInvoices = "get.invoices"
	opInvoice  = "get.invoice"
)

// Client talks to one inFakt environment with one API key. It is read-only
// after New and safe for concurrent use. The zero value is not initialized.
type Client struct {
	cfg Config
	t   *transport
}

// New validates cfg and returns an initialized Client. Each call yields an
// independent client.
func New(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Fetcher == nil {
		cfg.Fetcher = NewHTTPFetcher()
	}
	return &Client{
		cfg: cfg,
		t:   &transport{baseURL: cfg.BaseURL(), apiKey: cfg.APIKey, fetcher: cfg.Fetcher},
	}, nil
}

// Environment reports the environment the client targets.
func (c *Client) Environment() Environment {
	if c == nil {
		return ""
	}
	return c.cfg.Environment()
}

func (c *Client) ready() bool { return c != nil && c.t != nil }

// Get returns the read operations of the client.
func (c *Client) Get() Getter { return Getter{c: c} }

// Getter groups the GET endpoints.
type Getter struct {
	c *Client
}

// Invoices lists invoices. A nil params or an empty Fields requests the
// server's default projection.
func (g Getter) Invoices(ctx context.Context, params *model.InvoicesParams) (*model.InvoicesResponse, error) {
	if !g.c.ready() {
		return nil, ErrNotInitialized
	}
	path := "/invoices.json"
	if params != nil {
		if err := params.Validate(ctx); err != nil {
			return nil, &ParamsError{Op: opInvoices, Issues: schema.IssuesFromErr("/", err)}
		}
		if len(params.Fields) > 0 {
			path += "?" + url.Values{"fields": {params.Query()}}.Encode()
		}
	}
	return fetchJSON[model.InvoicesResponse](ctx, g.c.t, opInvoices, path, model.InvoicesResponseSchema())
}

// Invoice fetches a single invoice by id.
func (g Getter) Invoice(ctx context.Context, id int64) (*model.Invoice, error) {
	if !g.c.ready() {
		return nil, ErrNotInitialized
	}
	path := "/invoices/" + strconv.FormatInt(id, 10) + ".json"
	return fetchJSON[model.Invoice](ctx, g.c.t, opInvoice, path, model.InvoiceSchema())
}

// fetchJSON performs a GET and validates the body with s. Transport errors
// are returned as-is.
func fetchJSON[T any](ctx context.Context, t *transport, op, path string, s schema.Schema[T]) (*T, error) {
	resp, err := t.fetch(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	v, err := schema.StreamParse(ctx, s, resp.Body)
	if err != nil {
		return nil, &ResponseError{
			Op:         op,
			URL:        t.url(path),
			StatusCode: resp.StatusCode,
			Issues:     schema.IssuesFromErr("/", err),
		}
	}
	return &v, nil
}
