// Package testutil provides testing utilities for the find client.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// MockResponse defines the behavior of a mock collection endpoint response.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// MockCollection is a configurable mock collection server for testing. It
// records the header and query set of the most recent request so tests can
// assert on the encoded wire protocol.
type MockCollection struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	RequestCount int
	LastHeader   http.Header
	LastQuery    url.Values
	LastPath     string
}

// NewMockCollection creates a new mock collection server.
func NewMockCollection() *MockCollection {
	mock := &MockCollection{
		handlers: make(map[string]func(w http.ResponseWriter, r *http.Request)),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.LastHeader = r.Header.Clone()
		mock.LastQuery = r.URL.Query()
		mock.LastPath = r.URL.Path
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		mock.defaultHandler(w, r)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockCollection) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockCollection) Close() {
	m.server.Close()
}

// Reset clears all tracking state.
func (m *MockCollection) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.LastHeader = nil
	m.LastQuery = nil
	m.LastPath = ""
}

// SetHandler sets a custom handler for a specific path.
func (m *MockCollection) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a simple response for a path.
func (m *MockCollection) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}

		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// GetRequestCount returns the number of requests made to the server.
func (m *MockCollection) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// GetLastHeader returns a copy of the most recent request's headers.
func (m *MockCollection) GetLastHeader() http.Header {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.LastHeader
}

// GetLastQuery returns the most recent request's query parameters.
func (m *MockCollection) GetLastQuery() url.Values {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.LastQuery
}

// defaultHandler serves an empty collection with no page headers.
func (m *MockCollection) defaultHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`[]`))
}

// NewListResponse creates a 200 OK list response with the full page header set.
func NewListResponse(body string, page, size, count, pageTotal, total int) MockResponse {
	return MockResponse{
		StatusCode: http.StatusOK,
		Body:       body,
		Headers: map[string]string{
			"Content-Type":       "application/json; charset=utf-8",
			"X-Page":             strconv.Itoa(page),
			"X-Page-Size":        strconv.Itoa(size),
			"X-Page-Count":       strconv.Itoa(count),
			"X-Page-Total-Count": strconv.Itoa(pageTotal),
			"X-Total-Count":      strconv.Itoa(total),
		},
	}
}

// NewNotFoundResponse creates a 404 Not Found response.
func NewNotFoundResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusNotFound,
		Body:       `{"error": "Resource not found"}`,
		Headers: map[string]string{
			"Content-Type": "application/json; charset=utf-8",
		},
	}
}

// NewServerErrorResponse creates a 500 Internal Server Error response.
func NewServerErrorResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       `{"error": "Internal server error"}`,
		Headers: map[string]string{
			"Content-Type": "application/json; charset=utf-8",
		},
	}
}
