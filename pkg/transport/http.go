// Package transport provides the default HTTP transport behind the find
// layer: one GET round trip per call over net/http, with status
// classification, logging and metrics. Callers that need retries, caching or
// connection tuning inject their own http.Client or implement find.Transport
// themselves.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Sternrassler/rest-find-client/pkg/find"
)

// Prometheus metrics for transport round trips.
var (
	transportRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "transport_requests_total",
		Help: "Total HTTP requests by status",
	}, []string{"status"})

	transportRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "transport_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10},
	})

	transportErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "transport_errors_total",
		Help: "Total HTTP errors by class",
	}, []string{"class"})
)

// Config holds the transport configuration.
type Config struct {
	// UserAgent identifies the calling application on every request.
	UserAgent string

	// Timeout bounds the whole round trip. Ignored when HTTPClient is set.
	Timeout time.Duration

	// HTTPClient overrides the default client (useful for tests and for
	// callers with their own connection pooling).
	HTTPClient *http.Client
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig(userAgent string) Config {
	return Config{
		UserAgent: userAgent,
		Timeout:   30 * time.Second,
	}
}

// Client is the default find.Transport implementation.
type Client struct {
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

// New creates a transport client.
func New(cfg Config) (*Client, error) {
	if cfg.UserAgent == "" {
		return nil, fmt.Errorf("user-agent is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		httpClient: httpClient,
		userAgent:  cfg.UserAgent,
		logger:     log.With().Str("component", "transport").Logger(),
	}, nil
}

// Get performs a single GET round trip. Params merge into the URL's query
// string, caller headers apply before the User-Agent, and the full body is
// read before returning. A status of 400 or above becomes a *StatusError;
// there are no retries.
func (c *Client) Get(ctx context.Context, rawURL string, header http.Header, params url.Values) (*find.Response, error) {
	start := time.Now()
	defer func() {
		transportRequestDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	if len(params) > 0 {
		q := req.URL.Query()
		for key, values := range params {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		req.URL.RawQuery = q.Encode()
	}

	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug().
		Str("url", req.URL.String()).
		Msg("Executing request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		transportErrorsTotal.WithLabelValues(string(ClassNetwork)).Inc()
		transportRequestsTotal.WithLabelValues("network_error").Inc()
		c.logger.Error().
			Err(err).
			Str("url", rawURL).
			Msg("HTTP request failed")
		return nil, fmt.Errorf("get %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		transportErrorsTotal.WithLabelValues(string(ClassNetwork)).Inc()
		c.logger.Error().
			Err(err).
			Str("url", rawURL).
			Msg("Reading response body failed")
		return nil, fmt.Errorf("read response body: %w", err)
	}

	transportRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode >= 400 {
		class := classifyStatus(resp.StatusCode)
		transportErrorsTotal.WithLabelValues(string(class)).Inc()
		c.logger.Warn().
			Str("url", rawURL).
			Int("status", resp.StatusCode).
			Str("error_class", string(class)).
			Msg("Request error")
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Class:      class,
			Body:       body,
		}
	}

	return &find.Response{
		Body:   body,
		Header: resp.Header.Clone(),
	}, nil
}
