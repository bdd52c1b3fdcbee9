package infakt

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/reoring/infakt/schema"
)

// Client errors
var (
	// ErrNotInitialized is returned by every operation of a Client that was
	// not built with New.
	ErrNotInitialized = errors.New("infakt: client not initialized")

	// ErrMissingAPIKey is returned by New when Config.APIKey is empty.
	ErrMissingAPIKey = errors.New("infakt: missing API key")

	// ErrInvalidParams matches every *ParamsError.
	ErrInvalidParams = errors.New("infakt: invalid request parameters")

	// ErrInvalidResponse matches every *ResponseError.
	ErrInvalidResponse = errors.New("infakt: invalid response body")
)

// ParamsError reports request parameters rejected before any network call.
type ParamsError struct {
	// Op is the facade operation, e.g. "get.invoices".
	Op     string
	Issues schema.Issues
}

// Error implements the error interface.
func (e *ParamsError) Error() string {
	return fmt.Sprintf("infakt: %s: invalid params: %v", e.Op, e.Issues)
}

// Unwrap returns the validation issues.
func (e *ParamsError) Unwrap() error { return e.Issues }

// Is matches ErrInvalidParams.
func (e *ParamsError) Is(target error) bool { return target == ErrInvalidParams }

// ResponseError reports a response body that was not JSON or did not match
// the expected schema.
type ResponseError struct {
	Op         string
	URL        string
	StatusCode int
	Issues     schema.Issues
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("infakt: %s: invalid response from %s (status %d): %v", e.Op, e.URL, e.StatusCode, e.Issues)
}

// Unwrap returns the validation issues.
func (e *ResponseError) Unwrap() error { return e.Issues }

// Is matches ErrInvalidResponse.
func (e *ResponseError) Is(target error) bool { return target == ErrInvalidResponse }

// StatusError is returned by HTTPFetcher when the API answers with a
// non-2xx status.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	// Body holds the start of the response body.
	Body string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("infakt: %s %s: %d %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("infakt: %s %s: %d %s: %s", e.Method, e.URL, e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}
