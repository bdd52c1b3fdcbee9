// Package infakt is a typed client for the inFakt invoicing API v3.
//
// A Client is built from an explicit Config and exposes read operations under
// Get(). Every request carries the X-inFakt-ApiKey header and every response
// body is validated against the schemas in the model package before it is
// handed back:
//
//	c, err := infakt.New(infakt.Config{APIKey: key, Sandbox: true})
//	res, err := c.Get().Invoices(ctx, &model.InvoicesParams{
//		Fields: []model.InvoiceField{model.FieldID, model.FieldNumber},
//	})
//	inv, err := c.Get().Invoice(ctx, 42)
//
// Errors:
//   - ErrNotInitialized for a zero or nil Client, before any I/O
//   - *ParamsError when request parameters fail validation, before any I/O
//   - the Fetcher's error unchanged when the transport fails
//     (the default fetcher reports non-2xx responses as *StatusError)
//   - *ResponseError when the body is not JSON or does not match the schema
//
// The library does not log. LoggingFetcher and MetricsFetcher wrap a Fetcher
// for callers who want request logs or Prometheus metrics.
package infakt
