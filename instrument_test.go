package infakt_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/infakt"
)

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLoggingFetcher(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	calls := 0
	next := infakt.FetcherFunc(func(req *http.Request) (*http.Response, error) {
		calls++
		if calls == 2 {
			return nil, &infakt.StatusError{Method: req.Method, URL: req.URL.String(), StatusCode: http.StatusInternalServerError}
		}
		return jsonResponse(http.StatusOK, emptyList), nil
	})
	c := newClient(t, infakt.Config{APIKey: "top-secret", Fetcher: infakt.LoggingFetcher(next, log)})

	_, err := c.Get().Invoices(context.Background(), nil)
	require.NoError(t, err)
	_, err = c.Get().Invoices(context.Background(), nil)
	require.Error(t, err)

	assert.NotContains(t, buf.String(), "top-secret")
	lines := logLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "debug", lines[0]["level"])
	assert.Equal(t, "GET", lines[0]["method"])
	assert.Equal(t, "https://api.infakt.pl/api/v3/invoices.json", lines[0]["url"])
	assert.EqualValues(t, 200, lines[0]["status"])
	_, perr := uuid.Parse(lines[0]["request_id"].(string))
	assert.NoError(t, perr)

	assert.Equal(t, "error", lines[1]["level"])
	assert.EqualValues(t, 500, lines[1]["status"])
	assert.NotEqual(t, lines[0]["request_id"], lines[1]["request_id"])
}

func TestMetricsFetcher(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := infakt.NewMetrics(reg)

	fail := false
	next := infakt.FetcherFunc(func(*http.Request) (*http.Response, error) {
		if fail {
			return nil, errors.New("dial tcp: refused")
		}
		return jsonResponse(http.StatusOK, emptyList), nil
	})
	c := newClient(t, infakt.Config{APIKey: "k", Fetcher: infakt.MetricsFetcher(next, m)})

	ctx := context.Background()
	for range 2 {
		_, err := c.Get().Invoices(ctx, nil)
		require.NoError(t, err)
	}
	fail = true
	_, err := c.Get().Invoices(ctx, nil)
	require.Error(t, err)

	expected := `
# HELP infakt_client_requests_total Total number of inFakt API requests by method and status
# TYPE infakt_client_requests_total counter
infakt_client_requests_total{method="GET",status="200"} 2
infakt_client_requests_total{method="GET",status="error"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "infakt_client_requests_total"))

	n, err := testutil.GatherAndCount(reg, "infakt_client_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	assert.Panics(t, func() { infakt.NewMetrics(reg) }, "duplicate registration")
}
