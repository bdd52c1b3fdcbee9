package infakt

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Caller headers are copied but the API key header always wins.
func TestTransport_APIKeyCannotBeOverridden(t *testing.T) {
	var got *http.Request
	tr := &transport{
		baseURL: SandboxBaseURL,
		apiKey:  "real",
		fetcher: FetcherFunc(func(req *http.Request) (*http.Response, error) {
			got = req
			return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
		}),
	}
	_, err := tr.fetch(context.Background(), "/invoices.json", &RequestInit{
		Method: http.MethodHead,
		Header: http.Header{
			"X-Infakt-Apikey": {"forged"},
			"X-Trace":         {"a", "b"},
			"Accept":          {"text/csv"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, http.MethodHead, got.Method)
	assert.Equal(t, []string{"real"}, got.Header.Values(APIKeyHeader))
	assert.Equal(t, []string{"a", "b"}, got.Header.Values("X-Trace"))
	assert.Equal(t, "text/csv", got.Header.Get("Accept"))
	assert.Equal(t, SandboxBaseURL+"/invoices.json", got.URL.String())
}

func TestTransport_DefaultsToGET(t *testing.T) {
	var method string
	tr := &transport{baseURL: ProductionBaseURL, apiKey: "k", fetcher: FetcherFunc(func(req *http.Request) (*http.Response, error) {
		method = req.Method
		return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
	})}
	_, err := tr.fetch(context.Background(), "/x", nil)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, method)
}
