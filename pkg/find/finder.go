package find

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Transport executes one GET round trip against a collection endpoint. A nil
// error means a usable response envelope; a non-nil error carries the full
// transport-level detail and is propagated to callers unchanged. Cancellation
// and timeouts are the transport's concern, driven by ctx.
type Transport interface {
	Get(ctx context.Context, rawURL string, header http.Header, params url.Values) (*Response, error)
}

// Config holds the finder configuration.
type Config struct {
	// Endpoint is the absolute base URL of the collection.
	Endpoint string `validate:"required,url"`

	// Transport performs the HTTP round trips.
	Transport Transport `validate:"required"`

	// Logger overrides the default component logger. Optional.
	Logger *zerolog.Logger
}

var validate = validator.New()

// Finder binds a collection endpoint, a transport and an element converter
// into the two public lookup operations. It keeps no per-call state, so a
// single Finder is safe for concurrent use.
type Finder[T any] struct {
	endpoint  string
	transport Transport
	converter Converter[T]
	logger    zerolog.Logger
}

// New creates a Finder for one collection endpoint. The converter may be nil,
// in which case response bodies unmarshal directly into T.
func New[T any](cfg Config, conv Converter[T]) (*Finder[T], error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("finder config: %w", err)
	}

	logger := log.With().Str("component", "finder").Logger()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Finder[T]{
		endpoint:  strings.TrimRight(cfg.Endpoint, "/"),
		transport: cfg.Transport,
		converter: conv,
		logger:    logger.With().Str("endpoint", cfg.Endpoint).Logger(),
	}, nil
}

// FindByID fetches the single resource at endpoint/{id} and converts it. A
// transport failure (including the transport's own not-found policy) is
// logged with call context and returned verbatim; this layer never maps a
// missing resource into an empty result.
func (f *Finder[T]) FindByID(ctx context.Context, id string) (T, error) {
	const operation = "find_by_id"
	var zero T

	start := time.Now()
	defer func() {
		findRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	rawURL := f.endpoint + "/" + id
	f.logger.Debug().
		Str("operation", operation).
		Str("id", id).
		Msg("Fetching resource")

	req, err := Encode(nil)
	if err != nil {
		return zero, err
	}

	resp, err := f.transport.Get(ctx, rawURL, req.Header, req.Params)
	if err != nil {
		findErrorsTotal.WithLabelValues(operation).Inc()
		findRequestsTotal.WithLabelValues(operation, "error").Inc()
		f.logger.Error().
			Err(err).
			Str("operation", operation).
			Str("id", id).
			Msg("Transport call failed")
		return zero, err
	}
	findRequestsTotal.WithLabelValues(operation, "ok").Inc()

	if f.converter != nil {
		return f.converter.ToTarget(json.RawMessage(resp.Body))
	}

	var out T
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return zero, fmt.Errorf("decode resource body: %w", err)
	}
	return out, nil
}

// FindAll runs the list operation against the finder's own endpoint and
// converter.
func (f *Finder[T]) FindAll(ctx context.Context, opts *FindOptions) (ListResult[T], error) {
	return Find(ctx, f.transport, f.endpoint, opts, f.converter, f.logger)
}

// Find is the generalized list operation: encode options, issue the transport
// call, decode the paged response. It is a free function so callers can reuse
// it against sub-resource endpoints with a different element type and
// converter than the parent Finder's. Transport failures are logged and
// returned unchanged.
func Find[V any](ctx context.Context, tr Transport, endpointURL string, opts *FindOptions, conv Converter[V], logger zerolog.Logger) (ListResult[V], error) {
	const operation = "find"
	empty := ListResult[V]{Items: []V{}}

	start := time.Now()
	defer func() {
		findRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	req, err := Encode(opts)
	if err != nil {
		return empty, err
	}

	logger.Debug().
		Str("operation", operation).
		Str("url", endpointURL).
		Str("query", req.Params.Encode()).
		Msg("Fetching collection")

	resp, err := tr.Get(ctx, endpointURL, req.Header, req.Params)
	if err != nil {
		findErrorsTotal.WithLabelValues(operation).Inc()
		findRequestsTotal.WithLabelValues(operation, "error").Inc()
		logger.Error().
			Err(err).
			Str("operation", operation).
			Str("url", endpointURL).
			Msg("Transport call failed")
		return empty, err
	}
	findRequestsTotal.WithLabelValues(operation, "ok").Inc()

	return DecodeList(resp, conv)
}
