// find-proxy exposes an upstream paged collection through a small HTTP
// service. It translates plain query parameters (page, size, sort, filter)
// into the collection protocol via the find layer and returns the uniform
// list result as JSON.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/Sternrassler/rest-find-client/pkg/find"
	"github.com/Sternrassler/rest-find-client/pkg/logging"
	"github.com/Sternrassler/rest-find-client/pkg/transport"
)

func main() {
	// Configuration from environment
	upstreamURL := getEnv("UPSTREAM_URL", "")
	port := getEnv("PORT", "8080")
	userAgent := getEnv("USER_AGENT", "find-proxy/0.1.0")

	logging.Setup(logging.Config{
		Level:  logging.LogLevel(getEnv("LOG_LEVEL", "info")),
		Output: os.Stderr,
	})

	if upstreamURL == "" {
		log.Fatal().Msg("UPSTREAM_URL is required")
	}

	tr, err := transport.New(transport.Config{
		UserAgent: userAgent,
		Timeout:   30 * time.Second,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create transport")
	}

	finder, err := find.New[json.RawMessage](find.Config{
		Endpoint:  upstreamURL,
		Transport: tr,
	}, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create finder")
	}

	// HTTP Server
	http.HandleFunc("/health", healthHandler)
	http.HandleFunc("/items", itemsHandler(finder))
	http.Handle("/metrics", promhttp.Handler())

	addr := ":" + port
	log.Info().Str("addr", addr).Str("upstream", upstreamURL).Msg("Starting find proxy")

	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

// itemsHandler translates the incoming query string into find options and
// serves the decoded list result.
func itemsHandler(finder *find.Finder[json.RawMessage]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := parseOptions(r.URL.Query())
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		result, err := finder.FindAll(r.Context(), opts)
		if err != nil {
			var statusErr *transport.StatusError
			if errors.As(err, &statusErr) {
				http.Error(w, statusErr.Error(), statusErr.StatusCode)
				return
			}
			http.Error(w, fmt.Sprintf("upstream request failed: %v", err), http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{
			"items": result.Items,
			"page":  result.Page,
			"total": result.Total,
		}); err != nil {
			log.Error().Err(err).Msg("Failed to write response")
		}
	}
}

// filterOps maps the proxy's filter operator names onto wire tokens.
var filterOps = map[string]find.FilterType{
	"eq":       find.FilterEquals,
	"ne":       find.FilterNotEquals,
	"gt":       find.FilterGreaterThan,
	"gte":      find.FilterGreaterOrEqual,
	"lt":       find.FilterLessThan,
	"lte":      find.FilterLessOrEqual,
	"contains": find.FilterContains,
}

// parseOptions reads page, size, sort, dir and repeated filter parameters.
// Filters use the form field:op:value, e.g. filter=status:eq:OPEN.
func parseOptions(query url.Values) (*find.FindOptions, error) {
	opts := &find.FindOptions{}

	if sizeStr := query.Get("size"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("invalid size %q", sizeStr)
		}
		index := 0
		if pageStr := query.Get("page"); pageStr != "" {
			index, err = strconv.Atoi(pageStr)
			if err != nil || index < 0 {
				return nil, fmt.Errorf("invalid page %q", pageStr)
			}
		}
		opts.Page = &find.PageRequest{Index: index, Size: size}
	}

	if field := query.Get("sort"); field != "" {
		dir := find.SortAsc
		if strings.EqualFold(query.Get("dir"), "desc") {
			dir = find.SortDesc
		}
		opts.Sort = &find.Sort{Field: field, Direction: dir}
	}

	for _, raw := range query["filter"] {
		parts := strings.SplitN(raw, ":", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("invalid filter %q, want field:op:value", raw)
		}
		op, ok := filterOps[parts[1]]
		if !ok {
			return nil, fmt.Errorf("unknown filter operator %q", parts[1])
		}
		opts.Filters = append(opts.Filters, find.Filter{
			Field: parts[0],
			Type:  op,
			Value: parts[2],
		})
	}

	return opts, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
