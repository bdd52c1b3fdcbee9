package infakt

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// statusOf extracts the HTTP status from a response or a *StatusError.
// It returns 0 when neither carries one.
func statusOf(resp *http.Response, err error) int {
	if resp != nil {
		return resp.StatusCode
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// LoggingFetcher logs one line per request: debug on success, error on
// failure. Request headers are not logged.
func LoggingFetcher(next Fetcher, log zerolog.Logger) Fetcher {
	return FetcherFunc(func(req *http.Request) (*http.Response, error) {
		id := uuid.NewString()
		start := time.Now()
		resp, err := next.Do(req)

		ev := log.Debug()
		if err != nil {
			ev = log.Error().Err(err)
		}
		ev = ev.Str("request_id", id).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Dur("duration", time.Since(start))
		if status := statusOf(resp, err); status != 0 {
			ev = ev.Int("status", status)
		}
		ev.Msg("infakt request")
		return resp, err
	})
}

// Metrics holds the Prometheus collectors used by MetricsFetcher.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates the client collectors and registers them with reg
// (prometheus.DefaultRegisterer when nil). It panics on duplicate
// registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "infakt_client_requests_total",
				Help: "Total number of inFakt API requests by method and status",
			},
			[]string{"method", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "infakt_client_request_duration_seconds",
				Help:    "inFakt API request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
	reg.MustRegister(m.requestsTotal, m.requestDuration)
	return m
}

// MetricsFetcher records request counts and latency. Requests that fail
// without an HTTP status are counted with status "error".
func MetricsFetcher(next Fetcher, m *Metrics) Fetcher {
	return FetcherFunc(func(req *http.Request) (*http.Response, error) {
		start := time.Now()
		resp, err := next.Do(req)
		m.requestDuration.WithLabelValues(req.Method).Observe(time.Since(start).Seconds())

		status := "error"
		if code := statusOf(resp, err); code != 0 {
			status = strconv.Itoa(code)
		}
		m.requestsTotal.WithLabelValues(req.Method, status).Inc()
		return resp, err
	})
}
