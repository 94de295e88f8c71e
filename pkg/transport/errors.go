package transport

import "fmt"

// ErrorClass represents a classification of transport errors.
type ErrorClass string

const (
	// ClassClient represents 4xx client errors.
	ClassClient ErrorClass = "client"

	// ClassServer represents 5xx server errors.
	ClassServer ErrorClass = "server"

	// ClassNetwork represents network and body-read errors.
	ClassNetwork ErrorClass = "network"
)

// StatusError is returned for HTTP status codes of 400 and above. It carries
// the full response detail so callers can decide their own retry or
// user-messaging policy; the find layer passes it through untouched.
type StatusError struct {
	StatusCode int
	Status     string
	Class      ErrorClass
	Body       []byte
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("transport %s error (status %d): %s", e.Class, e.StatusCode, e.Status)
}

// classifyStatus categorizes an HTTP status code for observability.
func classifyStatus(status int) ErrorClass {
	if status >= 500 {
		return ClassServer
	}
	return ClassClient
}
